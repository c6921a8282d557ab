// Package life implements Conway's Game of Life on a bounded grid. Cells
// outside the grid do not exist: edge and corner cells simply have fewer
// neighbours.
package life

import (
	"runtime"

	"golife/pkg/core"
)

// Life holds one generation of a bounded Game of Life grid plus the spare
// buffer the next generation is built in.
type Life struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	src        core.Source
	workers    int
	generation int
}

var _ core.Sim = (*Life)(nil)

// Option customizes a Life at construction.
type Option func(*Life)

// WithSource injects the random source consumed by Seed.
func WithSource(src core.Source) Option {
	return func(l *Life) {
		if src != nil {
			l.src = src
		}
	}
}

// WithWorkers overrides the configured number of row bands per Step.
func WithWorkers(n int) Option {
	return func(l *Life) { l.workers = resolveWorkers(n) }
}

// New returns an all-dead grid of w by h cells using the default config.
func New(w, h int, opts ...Option) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig returns an all-dead grid configured from cfg. It fails with
// core.ErrInvalidDimension when either dimension is not positive.
func NewWithConfig(cfg Config, opts ...Option) (*Life, error) {
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	nxt, _ := core.NewGrid(cfg.Width, cfg.Height)

	l := &Life{cfg: cfg, cur: cur, nxt: nxt, workers: resolveWorkers(cfg.Workers)}
	if cfg.Seed != 0 {
		l.src = core.NewRNG(cfg.Seed)
	} else {
		l.src = core.NewRandomRNG()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation in row-major order. Callers must not
// modify it.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Snapshot returns a copy of the current generation.
func (l *Life) Snapshot() *core.Grid {
	size := l.cur.Size()
	g, _ := core.NewGrid(size.W, size.H)
	_ = g.CopyFrom(l.cur)
	return g
}

// Generation reports how many steps have run since the last seed or clear.
func (l *Life) Generation() int { return l.generation }

// Population counts the alive cells of the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Workers reports how many row bands Step uses.
func (l *Life) Workers() int { return l.workers }

// Alive reports whether cell (x, y) is alive, or core.ErrOutOfRange.
func (l *Life) Alive(x, y int) (bool, error) {
	return l.cur.At(x, y)
}

// Set overwrites a single cell of the current generation.
func (l *Life) Set(x, y int, alive bool) error {
	return l.cur.Set(x, y, alive)
}

// Toggle flips cell (x, y) and returns its new state.
func (l *Life) Toggle(x, y int) (bool, error) {
	alive, err := l.cur.At(x, y)
	if err != nil {
		return false, err
	}
	_ = l.cur.Set(x, y, !alive)
	return !alive, nil
}

// Clear kills every cell and restarts the generation count.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Seed overwrites every cell, each independently alive with probability one
// half.
func (l *Life) Seed() {
	core.FillBinary(l.src, l.cur.Cells())
	l.generation = 0
}

// Reset switches to a deterministic source derived from seed and reseeds the
// grid. A zero seed falls back to the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	if seed == 0 {
		l.src = core.NewRandomRNG()
	} else {
		l.src = core.NewRNG(seed)
	}
	l.Seed()
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
