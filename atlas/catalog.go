package atlas

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/platformgen/tilegrid"
)

// Tile is an atlas tile placed in the grid
type Tile struct {
	Definition *TileDefinition
	Image      *ebiten.Image // nil if the atlas was built without an image
}

// Name implements tilegrid.Resource
func (t *Tile) Name() string {
	return t.Definition.Name
}

// Walkable reports the tile's "walkable" property, defaulting to true
func (t *Tile) Walkable() bool {
	return t.Definition.GetTilePropertyBool("walkable", true)
}

// Catalog resolves tile kinds to atlas tiles by name
type Catalog struct {
	tiles map[tilegrid.TileKind]*Tile
}

// NewCatalog maps each tile kind to the atlas tile with the given name.
// Names the atlas doesn't define are logged to logger (log.Default if nil)
// and left unconfigured.
func NewCatalog(a *Atlas, names map[tilegrid.TileKind]string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	c := &Catalog{
		tiles: make(map[tilegrid.TileKind]*Tile),
	}

	kinds := make([]tilegrid.TileKind, 0, len(names))
	for kind := range names {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		name := names[kind]
		def, ok := a.GetTile(name)
		if !ok {
			logger.Printf("Warning: atlas %s has no tile %q for %s", a.Config.Name, name, kind)
			continue
		}
		c.tiles[kind] = &Tile{
			Definition: def,
			Image:      a.GetTileSubImage(def),
		}
	}

	if ground, ok := c.tiles[tilegrid.Ground]; ok && !ground.Walkable() {
		logger.Printf("Warning: ground tile %q is not walkable; the spawn cell will be blocked", ground.Name())
	}

	return c
}

// Resolve implements tilegrid.Catalog
func (c *Catalog) Resolve(kind tilegrid.TileKind) tilegrid.Resource {
	tile, ok := c.tiles[kind]
	if !ok {
		return nil
	}
	return tile
}

// Tile returns the atlas tile for kind
func (c *Catalog) Tile(kind tilegrid.TileKind) (*Tile, bool) {
	tile, ok := c.tiles[kind]
	return tile, ok
}
