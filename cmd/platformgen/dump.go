package main

import (
	"bufio"
	"fmt"
	"io"

	"chosenoffset.com/platformgen/geometry"
	"chosenoffset.com/platformgen/tilegrid"
)

var glyphs = map[tilegrid.TileKind]byte{
	tilegrid.Ground:    '=',
	tilegrid.Activator: '*',
	tilegrid.Cracked:   '#',
}

// dump writes the grid as text, top row first
func dump(out io.Writer, store *tilegrid.SparseStore, writer *tilegrid.Writer) error {
	min, max, ok := store.Extent()
	if !ok {
		_, err := fmt.Fprintln(out, "(empty grid)")
		return err
	}

	w := bufio.NewWriter(out)
	row := make([]byte, 0, max.X-min.X+1)
	for y := max.Y; y >= min.Y; y-- {
		row = row[:0]
		for x := min.X; x <= max.X; x++ {
			pos := geometry.Position{X: x, Y: y}
			if !store.HasTile(pos) {
				row = append(row, ' ')
				continue
			}
			kind, known := writer.KindAt(pos)
			if !known {
				row = append(row, '?')
				continue
			}
			row = append(row, glyphs[kind])
		}
		if _, err := fmt.Fprintf(w, "%4d %s\n", y, row); err != nil {
			return fmt.Errorf("failed to write grid: %w", err)
		}
	}
	return w.Flush()
}
