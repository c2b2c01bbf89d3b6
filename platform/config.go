package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/platformgen/geometry"
	"chosenoffset.com/platformgen/tilegrid"
)

// Config holds the generator settings and the platforms to decorate
type Config struct {
	Seed  int64 `yaml:"seed"`  // Random seed (0 = use current time)
	Level int   `yaml:"level"` // Level the run starts on

	Activators ActivatorConfig `yaml:"activators"`

	// Tile names looked up in the catalog for each tile kind
	Tiles TileNames `yaml:"tiles"`

	// Optional atlas JSON; without it tiles are plain names
	AtlasPath string `yaml:"atlas"`

	// Border kind used by regions that don't set their own (default cracked)
	Border *tilegrid.TileKind `yaml:"border"`

	Regions []RegionPlan `yaml:"regions"`
}

// ActivatorConfig controls the per-level activator budget and pattern weights
type ActivatorConfig struct {
	Base     int            `yaml:"base"`      // Budget on level 0
	PerLevel int            `yaml:"per_level"` // Budget added per level
	Weights  map[string]int `yaml:"weights"`   // Selection weight per activator kind name
}

// TileNames maps each tile kind to a catalog tile name
type TileNames struct {
	Ground    string `yaml:"ground"`
	Activator string `yaml:"activator"`
	Cracked   string `yaml:"cracked"`
}

// ByKind returns the names keyed by tile kind
func (n TileNames) ByKind() map[tilegrid.TileKind]string {
	return map[tilegrid.TileKind]string{
		tilegrid.Ground:    n.Ground,
		tilegrid.Activator: n.Activator,
		tilegrid.Cracked:   n.Cracked,
	}
}

// validate rejects two kinds sharing a tile name, which would make the
// placed tiles indistinguishable
func (n TileNames) validate() error {
	seen := make(map[string]tilegrid.TileKind)
	for _, kind := range tilegrid.TileKinds {
		name := n.ByKind()[kind]
		if name == "" {
			continue
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("tile name %q is used by both %s and %s", name, other, kind)
		}
		seen[name] = kind
	}
	return nil
}

// RegionPlan is one platform to decorate
type RegionPlan struct {
	Width  int                `yaml:"width"`
	Height int                `yaml:"height"`
	X      int                `yaml:"x"`
	Y      int                `yaml:"y"`
	Fill   *tilegrid.TileKind `yaml:"fill"`   // Defaults to ground
	Border *tilegrid.TileKind `yaml:"border"` // Defaults to Config.BorderKind
}

// Region returns the plan's bounds and offset
func (p RegionPlan) Region() geometry.Region {
	return geometry.Region{
		Bounds: geometry.Bounds{W: p.Width, H: p.Height},
		Offset: geometry.Position{X: p.X, Y: p.Y},
	}
}

// DefaultConfig returns the stock activator budget and tile names
func DefaultConfig() *Config {
	return &Config{
		Seed:  0,
		Level: 1,
		Activators: ActivatorConfig{
			Base:     8,
			PerLevel: 2,
			Weights: map[string]int{
				SingleOnEdge.String(): 1,
			},
		},
		Tiles: TileNames{
			Ground:    "ground",
			Activator: "activator",
			Cracked:   "cracked",
		},
	}
}

// BorderKind returns the default border kind for regions
func (c *Config) BorderKind() tilegrid.TileKind {
	if c.Border == nil {
		return tilegrid.Cracked
	}
	return *c.Border
}

// withDefaults returns a copy of c with unset fields taken from DefaultConfig.
// An activator block with no budget and no weights counts as unset.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}

	out := *c
	if out.Level == 0 {
		out.Level = defaults.Level
	}
	if out.Activators.Base == 0 && out.Activators.PerLevel == 0 && len(out.Activators.Weights) == 0 {
		out.Activators.Base = defaults.Activators.Base
		out.Activators.PerLevel = defaults.Activators.PerLevel
	}
	if len(out.Activators.Weights) == 0 {
		out.Activators.Weights = defaults.Activators.Weights
	}
	if out.Tiles.Ground == "" {
		out.Tiles.Ground = defaults.Tiles.Ground
	}
	if out.Tiles.Activator == "" {
		out.Tiles.Activator = defaults.Tiles.Activator
	}
	if out.Tiles.Cracked == "" {
		out.Tiles.Cracked = defaults.Tiles.Cracked
	}
	return &out
}

// LoadConfig loads generator config from a YAML file.
// A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read generator config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse generator config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the config for values the generator can't work with
func (c *Config) Validate() error {
	if c.Level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", c.Level)
	}
	if c.Activators.Base < 0 || c.Activators.PerLevel < 0 {
		return fmt.Errorf("activator budget must not be negative (base %d, per_level %d)",
			c.Activators.Base, c.Activators.PerLevel)
	}
	if _, err := c.Activators.weighted(); err != nil {
		return err
	}
	if err := c.Tiles.validate(); err != nil {
		return err
	}
	for i, r := range c.Regions {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("region %d at (%d,%d): width and height must be positive", i, r.X, r.Y)
		}
	}
	return nil
}

type weightedActivator struct {
	kind   ActivatorKind
	weight int
}

// weighted returns the configured weights in ActivatorKinds order.
// Kinds without a positive weight are left out.
func (a ActivatorConfig) weighted() ([]weightedActivator, error) {
	byKind := make(map[ActivatorKind]int, len(a.Weights))
	for name, weight := range a.Weights {
		kind, err := ParseActivatorKind(name)
		if err != nil {
			return nil, err
		}
		if weight < 0 {
			return nil, fmt.Errorf("activator %s: weight must not be negative", name)
		}
		byKind[kind] = weight
	}

	var out []weightedActivator
	for _, kind := range ActivatorKinds {
		if w := byKind[kind]; w > 0 {
			out = append(out, weightedActivator{kind: kind, weight: w})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one activator kind needs a positive weight")
	}
	return out, nil
}
