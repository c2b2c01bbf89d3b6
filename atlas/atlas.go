package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// TileDefinition defines a single tile within an atlas
type TileDefinition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "ground")
	AtlasX     int                    `json:"atlas_x"`    // X position in atlas (in tiles)
	AtlasY     int                    `json:"atlas_y"`    // Y position in atlas (in tiles)
	Properties map[string]interface{} `json:"properties"` // Custom properties (walkable, hazard, ...)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string           `json:"name"`        // Atlas name
	ImagePath  string           `json:"image_path"`  // Path to the atlas image file
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of tile definitions
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config      *AtlasConfig
	Image       *ebiten.Image
	TilesByName map[string]*TileDefinition // Quick lookup by name
}

const atlasSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "image_path", "tile_width", "tile_height", "tiles"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"image_path": {"type": "string", "minLength": 1},
		"tile_width": {"type": "integer", "minimum": 1},
		"tile_height": {"type": "integer", "minimum": 1},
		"tiles": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "atlas_x", "atlas_y"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"atlas_x": {"type": "integer", "minimum": 0},
					"atlas_y": {"type": "integer", "minimum": 0},
					"properties": {"type": "object"}
				}
			}
		}
	}
}`

var atlasSchema = jsonschema.MustCompileString("atlas.schema.json", atlasSchemaJSON)

// ParseAtlasConfig validates and decodes an atlas JSON document
func ParseAtlasConfig(data []byte) (*AtlasConfig, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}
	if err := atlasSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("atlas config does not match schema: %w", err)
	}

	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode atlas config: %w", err)
	}

	seen := make(map[string]bool, len(config.Tiles))
	for _, tile := range config.Tiles {
		if seen[tile.Name] {
			return nil, fmt.Errorf("duplicate tile name: %s", tile.Name)
		}
		seen[tile.Name] = true
	}

	return &config, nil
}

// New builds an atlas from a parsed config and an already loaded image.
// img may be nil when only tile names are needed.
func New(config *AtlasConfig, img *ebiten.Image) *Atlas {
	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		tilesByName[tile.Name] = tile
	}

	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
	}
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	img, _, err := ebitenutil.NewImageFromFile(config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", config.ImagePath, err)
	}

	return New(config, img), nil
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// GetTileSubImage returns the sub-image for a specific tile, or nil if the
// atlas has no image
func (a *Atlas) GetTileSubImage(tile *TileDefinition) *ebiten.Image {
	if a.Image == nil {
		return nil
	}

	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	w := a.Config.TileWidth
	h := a.Config.TileHeight

	rect := image.Rect(x, y, x+w, y+h)
	return a.Image.SubImage(rect).(*ebiten.Image)
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}
