package life

import "strconv"

// Config controls the Life grid dimensions, seeding and step parallelism.
type Config struct {
	Width  int
	Height int

	// Seed feeds Reset-style deterministic seeding. Zero selects an
	// entropy-seeded source.
	Seed int64

	// Workers is the number of row bands Step splits the grid into. Zero
	// means one band per available CPU.
	Workers int
}

// DefaultConfig returns the 160x120 grid of the classic 800x600 window at
// five pixels per cell, stepped serially.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Workers: 1}
}

// FromMap populates a Config from a string map. Malformed values are
// ignored, but non-positive dimensions are carried through so that New can
// reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
