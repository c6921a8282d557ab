package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}}
	for _, c := range cases {
		g, err := NewGrid(c[0], c[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d,%d) err=%v, expected ErrInvalidDimension", c[0], c[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d,%d) returned a grid alongside the error", c[0], c[1])
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(7, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if len(g.Cells()) != 21 {
		t.Fatalf("expected 21 cells, got %d", len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("expected empty grid, got population %d", g.Population())
	}
}

func TestGridAccessors(t *testing.T) {
	g, _ := NewGrid(4, 3)
	if err := g.Set(3, 2, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if idx := g.Index(3, 2); idx != 11 || !g.Cells()[idx] {
		t.Fatalf("expected cell (3,2) stored at index 11")
	}
	alive, err := g.At(3, 2)
	if err != nil || !alive {
		t.Fatalf("At(3,2) = %v, %v", alive, err)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := g.At(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d,%d) err=%v, expected ErrOutOfRange", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%d,%d) err=%v, expected ErrOutOfRange", p[0], p[1], err)
		}
	}
	if g.Population() != 1 {
		t.Fatalf("rejected writes must not mutate the grid, population=%d", g.Population())
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear should kill every cell")
	}
}

func TestGridCopySwapEqual(t *testing.T) {
	a, _ := NewGrid(3, 3)
	b, _ := NewGrid(3, 3)
	_ = a.Set(1, 1, true)

	if a.Equal(b) {
		t.Fatal("grids with different contents must not be equal")
	}
	if err := b.CopyFrom(a); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("expected equal grids after CopyFrom")
	}

	_ = b.Set(0, 0, true)
	a.Swap(b)
	if alive, _ := a.At(0, 0); !alive {
		t.Fatal("Swap should move b's buffer into a")
	}
	if alive, _ := b.At(0, 0); alive {
		t.Fatal("Swap should move a's buffer into b")
	}

	c, _ := NewGrid(2, 3)
	if err := c.CopyFrom(a); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("CopyFrom mismatched err=%v", err)
	}
}
