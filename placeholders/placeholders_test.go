package placeholders

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/platformgen/atlas"
	"chosenoffset.com/platformgen/tilegrid"
)

func TestPlatformTilesAreDistinct(t *testing.T) {
	tiles := PlatformTiles()
	if len(tiles) != len(tilegrid.TileKinds) {
		t.Fatalf("Expected %d tiles, got %d", len(tilegrid.TileKinds), len(tiles))
	}

	centre := func(i int) [4]uint8 {
		c := tiles[i].RGBAAt(TileSize/2, TileSize/2)
		return [4]uint8{c.R, c.G, c.B, c.A}
	}
	if centre(0) == centre(1) || centre(1) == centre(2) {
		t.Error("Expected ground, activator and cracked placeholders to differ")
	}
}

func TestCreateAtlasLayout(t *testing.T) {
	tiles := PlatformTiles()
	img := CreateAtlas(tiles, 2)

	b := img.Bounds()
	if b.Dx() != 2*TileSize || b.Dy() != 2*TileSize {
		t.Errorf("Expected %dx%d atlas, got %dx%d", 2*TileSize, 2*TileSize, b.Dx(), b.Dy())
	}

	// Third tile wraps to the second row
	if img.RGBAAt(0, TileSize) != tiles[2].RGBAAt(0, 0) {
		t.Error("Expected third tile at the start of the second row")
	}
	if img.RGBAAt(TileSize, TileSize).A != 0 {
		t.Error("Expected unused atlas slot to be transparent")
	}
}

func TestPlatformAtlasConfigMatchesCatalog(t *testing.T) {
	config := PlatformAtlasConfig("platforms.png")

	data, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("Failed to encode config: %v", err)
	}
	parsed, err := atlas.ParseAtlasConfig(data)
	if err != nil {
		t.Fatalf("Generated config failed validation: %v", err)
	}

	names := make(map[tilegrid.TileKind]string)
	for _, kind := range tilegrid.TileKinds {
		names[kind] = kind.String()
	}
	catalog := atlas.NewCatalog(atlas.New(parsed, nil), names, nil)
	if missing := tilegrid.Missing(catalog); len(missing) != 0 {
		t.Errorf("Expected every tile kind in the atlas, missing %v", missing)
	}

	if tile, _ := catalog.Tile(tilegrid.Cracked); tile.Walkable() {
		t.Error("Expected cracked placeholder to be marked unwalkable")
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "assets", "platforms.png"))
	if err != nil {
		t.Fatalf("Expected atlas image: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode atlas image: %v", err)
	}
	if img.Bounds().Dx() != 3*TileSize || img.Bounds().Dy() != TileSize {
		t.Errorf("Unexpected atlas size %v", img.Bounds())
	}

	data, err := os.ReadFile(filepath.Join(dir, "atlases", "platforms.json"))
	if err != nil {
		t.Fatalf("Expected atlas config: %v", err)
	}
	if _, err := atlas.ParseAtlasConfig(data); err != nil {
		t.Errorf("Saved atlas config is invalid: %v", err)
	}
}
