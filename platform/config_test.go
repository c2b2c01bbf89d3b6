package platform

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/platformgen/tilegrid"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
seed: 42
level: 3
activators:
  base: 4
  per_level: 3
tiles:
  cracked: rubble
border: ground
regions:
  - {width: 6, height: 3, x: 0, y: 0}
  - {width: 4, height: 2, x: 9, y: 1, fill: cracked, border: cracked}
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Seed != 42 || config.Level != 3 {
		t.Errorf("Expected seed 42 level 3, got %d/%d", config.Seed, config.Level)
	}
	if config.Activators.Base != 4 || config.Activators.PerLevel != 3 {
		t.Errorf("Unexpected activator budget %+v", config.Activators)
	}
	if config.Activators.Weights[SingleOnEdge.String()] != 1 {
		t.Error("Expected default activator weights to survive")
	}
	if config.Tiles.Cracked != "rubble" || config.Tiles.Ground != "ground" {
		t.Errorf("Unexpected tile names %+v", config.Tiles)
	}
	if config.BorderKind() != tilegrid.Ground {
		t.Errorf("Expected ground border, got %s", config.BorderKind())
	}

	if len(config.Regions) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(config.Regions))
	}
	first := config.Regions[0]
	if first.Fill != nil || first.Border != nil {
		t.Error("Expected first region to use default tiles")
	}
	second := config.Regions[1]
	if second.Fill == nil || *second.Fill != tilegrid.Cracked {
		t.Errorf("Expected cracked fill on second region, got %v", second.Fill)
	}
	if r := second.Region(); r.Bounds.W != 4 || r.Offset.Y != 1 {
		t.Errorf("Unexpected region %+v", r)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if config.Activators.Base != 8 || config.Activators.PerLevel != 2 {
		t.Errorf("Unexpected default budget %+v", config.Activators)
	}
	if config.BorderKind() != tilegrid.Cracked {
		t.Errorf("Expected cracked default border, got %s", config.BorderKind())
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"unknown tile":         "border: lava\n",
		"zero level":           "level: 0\n",
		"negative budget":      "activators: {base: -1}\n",
		"unknown pattern":      "activators: {weights: {spiral: 2}}\n",
		"no weights":           "activators: {weights: {single_on_edge: 0}}\n",
		"empty region":         "regions: [{width: 0, height: 2}]\n",
		"malformed yaml":       "regions: [\n",
		"duplicate tile names": "tiles: {ground: stone, cracked: stone}\n",
	}

	for name, contents := range tests {
		if _, err := LoadConfig(writeConfig(t, contents)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestValidateRejectsSharedTileNames(t *testing.T) {
	config := DefaultConfig()
	config.Tiles = TileNames{Ground: "stone", Activator: "switch", Cracked: "stone"}
	if err := config.Validate(); err == nil {
		t.Error("Expected error when ground and cracked share a tile name")
	}

	config.Tiles.Cracked = "rubble"
	if err := config.Validate(); err != nil {
		t.Errorf("Expected distinct names to pass, got %v", err)
	}
}

func TestWithDefaultsFillsPartialConfig(t *testing.T) {
	config := (&Config{Seed: 42, Tiles: TileNames{Cracked: "rubble"}}).withDefaults()

	if config.Seed != 42 || config.Level != 1 {
		t.Errorf("Expected seed 42 level 1, got %d/%d", config.Seed, config.Level)
	}
	if config.Activators.Base != 8 || config.Activators.PerLevel != 2 {
		t.Errorf("Expected default budget, got %+v", config.Activators)
	}
	if config.Tiles.Cracked != "rubble" || config.Tiles.Ground != "ground" {
		t.Errorf("Unexpected tile names %+v", config.Tiles)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected merged config to validate, got %v", err)
	}
}
