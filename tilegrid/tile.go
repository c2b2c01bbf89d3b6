// Package tilegrid holds the sparse tile store shared by the platform generator
// and the writer that places catalog tiles into it.
package tilegrid

import (
	"fmt"
	"strings"
)

// TileKind is the symbolic kind of a tile, resolved to a drawable Resource by a Catalog
type TileKind int

const (
	Ground TileKind = iota
	Activator
	Cracked
)

// TileKinds lists every TileKind in declaration order.
var TileKinds = []TileKind{Ground, Activator, Cracked}

func (k TileKind) String() string {
	switch k {
	case Ground:
		return "ground"
	case Activator:
		return "activator"
	case Cracked:
		return "cracked"
	}
	return fmt.Sprintf("TileKind(%d)", int(k))
}

// ParseTileKind converts a name such as "cracked" to its TileKind
func ParseTileKind(name string) (TileKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ground":
		return Ground, nil
	case "activator":
		return Activator, nil
	case "cracked":
		return Cracked, nil
	}
	return Ground, fmt.Errorf("unknown tile kind '%s'", name)
}

// MarshalText implements encoding.TextMarshaler
func (k TileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *TileKind) UnmarshalText(text []byte) error {
	kind, err := ParseTileKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
