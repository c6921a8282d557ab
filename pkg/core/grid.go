package core

import (
	"fmt"
	"slices"
)

// Grid stores a bounded 2D field of alive/dead cells in row-major order.
// Cell (x, y) lives at index y*W+x.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, data: make([]bool, w*h)}, nil
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []bool { return g.data }

// Size reports the grid dimensions, which are fixed at construction.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the state of cell (x, y).
func (g *Grid) At(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, x, y, g.w, g.h)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores the state of cell (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, x, y, g.w, g.h)
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.data)
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.w != g.w || src.h != g.h {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidDimension, src.w, src.h, g.w, g.h)
	}
	copy(g.data, src.data)
	return nil
}

// Swap exchanges the backing buffers of g and other, which must share
// dimensions. It is the double-buffer flip used after a generation is built.
func (g *Grid) Swap(other *Grid) {
	g.data, other.data = other.data, g.data
}

// Population counts alive cells.
func (g *Grid) Population() int {
	return CountAlive(g.data)
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	return g.w == other.w && g.h == other.h && slices.Equal(g.data, other.data)
}

// CountAlive returns the number of true values in cells.
func CountAlive(cells []bool) int {
	total := 0
	for _, c := range cells {
		if c {
			total++
		}
	}
	return total
}
