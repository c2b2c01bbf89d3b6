package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// ColorPalette defines colors for the platform tile kinds
var ColorPalette = struct {
	Ground       color.RGBA
	GroundDetail color.RGBA
	Activator    color.RGBA
	ActivatorRim color.RGBA
	Cracked      color.RGBA
	CrackLine    color.RGBA
}{
	Ground:       color.RGBA{90, 110, 70, 255},  // Mossy stone
	GroundDetail: color.RGBA{75, 95, 58, 255},   // Darker moss
	Activator:    color.RGBA{230, 190, 40, 255}, // Bright gold
	ActivatorRim: color.RGBA{150, 110, 20, 255}, // Dark gold
	Cracked:      color.RGBA{110, 100, 95, 255}, // Weathered rock
	CrackLine:    color.RGBA{35, 30, 28, 255},   // Near-black fissure
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}

	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "fissure":
		// Zig-zag crack from top-left to bottom-right
		x := 3
		for y := 0; y < TileSize; y++ {
			img.Set(x, y, patternColor)
			img.Set(x+1, y, patternColor)
			if (y/4)%2 == 0 {
				x++
			} else if x > 1 {
				x--
			}
			x++
			if x >= TileSize-1 {
				x = TileSize - 2
			}
		}
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns

	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))
	draw.Draw(atlas, atlas.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		x := (i % columns) * TileSize
		y := (i / columns) * TileSize

		destRect := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(atlas, destRect, tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
