package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/platformgen/atlas"
	"chosenoffset.com/platformgen/tilegrid"
)

// PlatformTiles returns one placeholder tile per tile kind, in tilegrid.TileKinds order
func PlatformTiles() []*image.RGBA {
	tiles := make([]*image.RGBA, 0, len(tilegrid.TileKinds))
	for _, kind := range tilegrid.TileKinds {
		tiles = append(tiles, CreatePlatformTile(kind))
	}
	return tiles
}

// CreatePlatformTile draws the placeholder for a tile kind
func CreatePlatformTile(kind tilegrid.TileKind) *image.RGBA {
	switch kind {
	case tilegrid.Activator:
		img := CreateBorderedTile(ColorPalette.Activator, ColorPalette.ActivatorRim, 3)
		mid := TileSize / 2
		for y := mid - 3; y <= mid+3; y++ {
			for x := mid - 3; x <= mid+3; x++ {
				img.Set(x, y, ColorPalette.ActivatorRim)
			}
		}
		return img
	case tilegrid.Cracked:
		return CreatePatternedTile(ColorPalette.Cracked, ColorPalette.CrackLine, "fissure")
	default:
		return CreatePatternedTile(ColorPalette.Ground, ColorPalette.GroundDetail, "dots")
	}
}

// PlatformAtlasConfig describes the atlas written by GenerateAndSave
func PlatformAtlasConfig(imagePath string) *atlas.AtlasConfig {
	config := &atlas.AtlasConfig{
		Name:       "platforms",
		ImagePath:  imagePath,
		TileWidth:  TileSize,
		TileHeight: TileSize,
	}

	for i, kind := range tilegrid.TileKinds {
		config.Tiles = append(config.Tiles, atlas.TileDefinition{
			Name:   kind.String(),
			AtlasX: i,
			AtlasY: 0,
			Properties: map[string]interface{}{
				"walkable": kind != tilegrid.Cracked,
				"type":     kind.String(),
			},
		})
	}

	return config
}

// GenerateAndSave writes the platform atlas image and its JSON config into dataDir
func GenerateAndSave(dataDir string) error {
	fmt.Println("Generating placeholder platform atlas...")

	assetsDir := filepath.Join(dataDir, "assets")
	atlasDir := filepath.Join(dataDir, "atlases")

	for _, dir := range []string{assetsDir, atlasDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tiles := PlatformTiles()
	imagePath := filepath.Join(assetsDir, "platforms.png")
	if err := SavePNG(CreateAtlas(tiles, len(tiles)), imagePath); err != nil {
		return fmt.Errorf("failed to save platforms.png: %w", err)
	}
	fmt.Printf("✓ Generated %s (%dx%d pixels, %dx1 tiles @ %dpx)\n",
		imagePath, len(tiles)*TileSize, TileSize, len(tiles), TileSize)

	data, err := json.MarshalIndent(PlatformAtlasConfig(imagePath), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas config: %w", err)
	}
	configPath := filepath.Join(atlasDir, "platforms.json")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", configPath, err)
	}
	fmt.Printf("✓ Generated %s\n", configPath)

	fmt.Println("Placeholder atlas generated successfully!")
	return nil
}
