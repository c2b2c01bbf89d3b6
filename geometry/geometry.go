// Package geometry computes corner and side cells of rectangular platform regions
// laid out on a flat tile grid.
package geometry

import "fmt"

// Position is a cell on the tile grid. The layer is always 0.
type Position struct {
	X int
	Y int
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is the width and height of a region in tiles
type Bounds struct {
	W int
	H int
}

// Region is an axis-aligned rectangle of cells [Offset.X, Offset.X+W) x [Offset.Y, Offset.Y+H).
// Callers guarantee W and H are at least 1.
type Region struct {
	Bounds Bounds
	Offset Position
}

// EdgeKind selects one of the four corner cells inside a region
type EdgeKind int

const (
	BottomLeft EdgeKind = iota
	BottomRight
	TopLeft
	TopRight
)

// EdgeKinds lists every EdgeKind in declaration order.
var EdgeKinds = []EdgeKind{BottomLeft, BottomRight, TopLeft, TopRight}

func (e EdgeKind) String() string {
	switch e {
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	}
	return fmt.Sprintf("EdgeKind(%d)", int(e))
}

// SideKind selects one or all of the region's sides
type SideKind int

const (
	Bottom SideKind = iota
	Top
	Left
	Right
	All
)

func (s SideKind) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	case All:
		return "all"
	}
	return fmt.Sprintf("SideKind(%d)", int(s))
}

// IsFirstPlatform reports whether the region starting at offset is the spawn platform
func IsFirstPlatform(offset Position) bool {
	return offset.X == 0 && offset.Y == 0
}

// Edge returns the requested corner cell of the region.
// Unknown kinds fall back to BottomLeft.
func Edge(kind EdgeKind, bounds Bounds, offset Position) Position {
	switch kind {
	case TopLeft:
		return Position{X: offset.X, Y: offset.Y + bounds.H - 1}
	case TopRight:
		return Position{X: offset.X + bounds.W - 1, Y: offset.Y + bounds.H - 1}
	case BottomRight:
		return Position{X: offset.X + bounds.W - 1, Y: offset.Y}
	default:
		return Position{X: offset.X, Y: offset.Y}
	}
}

// Side returns the cells of the requested side.
//
// Bottom and Top walk the region's first and last rows. Left and Right walk the
// columns at offset.X-1 and bounds.W+offset.X-1. All emits a bottom/top pair for
// each column, then a left/right pair for each row; callers depend on that order.
func Side(kind SideKind, bounds Bounds, offset Position) []Position {
	top := bounds.H + offset.Y - 1
	left := offset.X - 1
	right := bounds.W + offset.X - 1

	switch kind {
	case Bottom:
		cells := make([]Position, 0, bounds.W)
		for i := 0; i < bounds.W; i++ {
			cells = append(cells, Position{X: offset.X + i, Y: offset.Y})
		}
		return cells
	case Top:
		cells := make([]Position, 0, bounds.W)
		for i := 0; i < bounds.W; i++ {
			cells = append(cells, Position{X: offset.X + i, Y: top})
		}
		return cells
	case Left:
		cells := make([]Position, 0, bounds.H)
		for j := 0; j < bounds.H; j++ {
			cells = append(cells, Position{X: left, Y: offset.Y + j})
		}
		return cells
	case Right:
		cells := make([]Position, 0, bounds.H)
		for j := 0; j < bounds.H; j++ {
			cells = append(cells, Position{X: right, Y: offset.Y + j})
		}
		return cells
	default: // All
		cells := make([]Position, 0, 2*bounds.W+2*bounds.H)
		for i := 0; i < bounds.W; i++ {
			cells = append(cells,
				Position{X: offset.X + i, Y: offset.Y},
				Position{X: offset.X + i, Y: top},
			)
		}
		for j := 0; j < bounds.H; j++ {
			cells = append(cells,
				Position{X: left, Y: offset.Y + j},
				Position{X: right, Y: offset.Y + j},
			)
		}
		return cells
	}
}

// Edge returns the requested corner of the region
func (r Region) Edge(kind EdgeKind) Position {
	return Edge(kind, r.Bounds, r.Offset)
}

// Side returns the cells of the requested side of the region
func (r Region) Side(kind SideKind) []Position {
	return Side(kind, r.Bounds, r.Offset)
}

// IsFirstPlatform reports whether the region hosts the player spawn
func (r Region) IsFirstPlatform() bool {
	return IsFirstPlatform(r.Offset)
}

// Contains reports whether p lies inside the region
func (r Region) Contains(p Position) bool {
	return p.X >= r.Offset.X && p.X < r.Offset.X+r.Bounds.W &&
		p.Y >= r.Offset.Y && p.Y < r.Offset.Y+r.Bounds.H
}
