package tilegrid

import (
	"log"
	"strings"

	"chosenoffset.com/platformgen/geometry"
)

// Writer places catalog tiles into a Store.
// It is not safe for concurrent use; give each Store a single Writer.
type Writer struct {
	store   Store
	catalog Catalog
	logger  *log.Logger
	warned  bool
}

// NewWriter creates a writer drawing tiles from catalog into store
func NewWriter(store Store, catalog Catalog) *Writer {
	return &Writer{
		store:   store,
		catalog: catalog,
		logger:  log.Default(),
	}
}

// SetLogger replaces the logger used for catalog warnings
func (w *Writer) SetLogger(logger *log.Logger) {
	w.logger = logger
}

// Resolve returns the resource for kind. If any kind is missing from the
// catalog a warning is logged once; the nil resource is still returned.
func (w *Writer) Resolve(kind TileKind) Resource {
	if !w.warned {
		if missing := Missing(w.catalog); len(missing) > 0 {
			names := make([]string, len(missing))
			for i, k := range missing {
				names[i] = k.String()
			}
			w.logger.Printf("Warning: tile catalog is not fully configured (missing: %s)", strings.Join(names, ", "))
		}
		w.warned = true
	}
	return w.catalog.Resolve(kind)
}

// SetIfEmpty places kind at pos only if the cell holds no tile.
// Used for borders and anything else that must not clobber placed content.
func (w *Writer) SetIfEmpty(pos geometry.Position, kind TileKind) {
	if w.store.HasTile(pos) {
		return
	}
	w.store.SetTile(pos, w.Resolve(kind))
}

// SetOverwrite places kind at pos unconditionally
func (w *Writer) SetOverwrite(pos geometry.Position, kind TileKind) {
	w.store.SetTile(pos, w.Resolve(kind))
}

// KindAt reports which catalog kind occupies pos, matching by resource name
func (w *Writer) KindAt(pos geometry.Position) (TileKind, bool) {
	tile := w.store.GetTile(pos)
	if tile == nil {
		return Ground, false
	}
	for _, kind := range TileKinds {
		if res := w.catalog.Resolve(kind); res != nil && res.Name() == tile.Name() {
			return kind, true
		}
	}
	return Ground, false
}

