package tilegrid

import (
	"sort"
	"sync"

	"chosenoffset.com/platformgen/geometry"
)

// Resource is an opaque drawable tile handle stored in the grid
type Resource interface {
	Name() string
}

// Store is the sparse 2D tile storage the writer draws into
type Store interface {
	HasTile(pos geometry.Position) bool
	SetTile(pos geometry.Position, tile Resource)
	GetTile(pos geometry.Position) Resource
	ClearTile(pos geometry.Position)
}

// SparseStore is a map-backed Store.
// Reads and writes are individually locked; SetIfEmpty style check-then-set
// sequences still need a single writer.
type SparseStore struct {
	mu    sync.RWMutex
	tiles map[geometry.Position]Resource
}

// NewSparseStore creates an empty store
func NewSparseStore() *SparseStore {
	return &SparseStore{
		tiles: make(map[geometry.Position]Resource),
	}
}

// HasTile reports whether a tile is set at pos
func (s *SparseStore) HasTile(pos geometry.Position) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tiles[pos]
	return ok
}

// SetTile places tile at pos. A nil tile clears the cell.
func (s *SparseStore) SetTile(pos geometry.Position, tile Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tile == nil {
		delete(s.tiles, pos)
		return
	}
	s.tiles[pos] = tile
}

// GetTile returns the tile at pos, or nil if the cell is empty
func (s *SparseStore) GetTile(pos geometry.Position) Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiles[pos]
}

// ClearTile empties the cell at pos
func (s *SparseStore) ClearTile(pos geometry.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tiles, pos)
}

// ClearAll removes every tile
func (s *SparseStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiles = make(map[geometry.Position]Resource)
}

// Len returns the number of occupied cells
func (s *SparseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tiles)
}

// Extent returns the smallest and largest occupied coordinates.
// ok is false when the store is empty.
func (s *SparseStore) Extent() (min, max geometry.Position, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for pos := range s.tiles {
		if !ok {
			min, max, ok = pos, pos, true
			continue
		}
		if pos.X < min.X {
			min.X = pos.X
		}
		if pos.Y < min.Y {
			min.Y = pos.Y
		}
		if pos.X > max.X {
			max.X = pos.X
		}
		if pos.Y > max.Y {
			max.Y = pos.Y
		}
	}
	return min, max, ok
}

// Positions returns the occupied cells sorted by row, then column
func (s *SparseStore) Positions() []geometry.Position {
	s.mu.RLock()
	positions := make([]geometry.Position, 0, len(s.tiles))
	for pos := range s.tiles {
		positions = append(positions, pos)
	}
	s.mu.RUnlock()

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}
