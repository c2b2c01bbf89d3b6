// Package platform decorates rectangular platforms on the tile grid with
// borders and level-dependent activator tiles.
package platform

import (
	"fmt"
	"math/rand"
	"time"

	"chosenoffset.com/platformgen/geometry"
	"chosenoffset.com/platformgen/tilegrid"
)

// LevelContext supplies the level the generator is building for
type LevelContext interface {
	CurrentLevel() int
}

// Generator decorates platforms on a single grid.
// All calls must come from one goroutine.
type Generator struct {
	grid    *tilegrid.Writer
	rng     *rand.Rand
	weights []weightedActivator
	border  tilegrid.TileKind

	currentLevel int
	// Budget derived from the level; reported but not enforced
	maxActivators int
	// Number of explicit activator placements attempted
	activatorIterations int
	// Number of activator tiles placed
	activatorsPlaced int
}

// NewGenerator creates a generator drawing through grid.
// Unset config fields take their DefaultConfig values; the level is read
// from levels once, here.
func NewGenerator(grid *tilegrid.Writer, levels LevelContext, config *Config) (*Generator, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	weights, err := config.Activators.weighted()
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level := levels.CurrentLevel()

	return &Generator{
		grid:          grid,
		rng:           rand.New(rand.NewSource(seed)),
		weights:       weights,
		border:        config.BorderKind(),
		currentLevel:  level,
		maxActivators: config.Activators.Base + level*config.Activators.PerLevel,
	}, nil
}

// CurrentLevel returns the level read at construction
func (g *Generator) CurrentLevel() int {
	return g.currentLevel
}

// MaxActivators returns the activator budget for the level
func (g *Generator) MaxActivators() int {
	return g.maxActivators
}

// ActivatorIterations returns how many explicit placements have been attempted
func (g *Generator) ActivatorIterations() int {
	return g.activatorIterations
}

// ActivatorsPlaced returns how many activator tiles have been placed
func (g *Generator) ActivatorsPlaced() int {
	return g.activatorsPlaced
}

// Decorate fills the planned platform, borders it and places its activators
func (g *Generator) Decorate(plan RegionPlan) {
	region := plan.Region()

	border := g.border
	if plan.Border != nil {
		border = *plan.Border
	}

	if plan.Fill != nil {
		g.Fill(region.Bounds, region.Offset, *plan.Fill)
	} else {
		g.FillGround(region.Bounds, region.Offset)
	}
	g.DrawBorder(region.Bounds, region.Offset, border)
	g.PlaceActivator(Auto(), region.Bounds, region.Offset)
}

// Fill overwrites every cell of the platform with kind.
// On the first platform the spawn cell is forced back to ground.
func (g *Generator) Fill(bounds geometry.Bounds, offset geometry.Position, kind tilegrid.TileKind) {
	for j := 0; j < bounds.H; j++ {
		for i := 0; i < bounds.W; i++ {
			g.grid.SetOverwrite(geometry.Position{X: i + offset.X, Y: j + offset.Y}, kind)
		}
	}

	if geometry.IsFirstPlatform(offset) {
		g.grid.SetOverwrite(geometry.Position{}, tilegrid.Ground)
	}
}

// FillGround fills the platform with ground
func (g *Generator) FillGround(bounds geometry.Bounds, offset geometry.Position) {
	g.Fill(bounds, offset, tilegrid.Ground)
}

// DrawBorder surrounds the platform with kind one cell outside its bounds.
// Cells that already hold a tile are left alone, so neighbouring platforms
// can share border cells.
func (g *Generator) DrawBorder(bounds geometry.Bounds, offset geometry.Position, kind tilegrid.TileKind) {
	for j := -1; j < bounds.H+1; j++ {
		g.grid.SetIfEmpty(geometry.Position{X: bounds.W + offset.X, Y: j + offset.Y}, kind)
		g.grid.SetIfEmpty(geometry.Position{X: offset.X - 1, Y: j + offset.Y}, kind)
	}

	for i := 0; i < bounds.W; i++ {
		g.grid.SetIfEmpty(geometry.Position{X: offset.X + i, Y: offset.Y - 1}, kind)
		g.grid.SetIfEmpty(geometry.Position{X: offset.X + i, Y: offset.Y + bounds.H}, kind)
	}
}

// PlaceActivator places activators on the platform.
//
// With Auto, the first platform only gets an activator on level 1 and later
// levels skip it entirely; other platforms get a weighted choice of pattern.
// Explicit placements always count as an iteration.
func (g *Generator) PlaceActivator(sel ActivatorSelection, bounds geometry.Bounds, offset geometry.Position) {
	kind, explicit := sel.Kind()
	if !explicit {
		if geometry.IsFirstPlatform(offset) {
			if g.currentLevel != 1 {
				return
			}
			kind = SingleOnEdge
		} else {
			kind = g.chooseActivator()
		}
	}

	switch kind {
	case SingleOnEdge:
		edges := geometry.EdgeKinds
		// BottomLeft of the first platform is the spawn cell
		if geometry.IsFirstPlatform(offset) {
			edges = edges[1:]
		}
		g.PlaceSingleActivatorOnEdge(edges[g.rng.Intn(len(edges))], bounds, offset)
	}

	g.activatorIterations++
}

// PlaceSingleActivatorOnEdge overwrites the given corner with an activator
func (g *Generator) PlaceSingleActivatorOnEdge(edge geometry.EdgeKind, bounds geometry.Bounds, offset geometry.Position) {
	g.grid.SetOverwrite(geometry.Edge(edge, bounds, offset), tilegrid.Activator)
	g.activatorsPlaced++
}

// chooseActivator picks a pattern by weight
func (g *Generator) chooseActivator() ActivatorKind {
	if len(g.weights) == 1 {
		return g.weights[0].kind
	}

	total := 0
	for _, w := range g.weights {
		total += w.weight
	}

	roll := g.rng.Intn(total)
	current := 0
	for _, w := range g.weights {
		current += w.weight
		if roll < current {
			return w.kind
		}
	}
	return g.weights[len(g.weights)-1].kind
}
