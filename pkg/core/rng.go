package core

import "math/rand/v2"

// Source supplies the randomness consumed when seeding a grid. *rand.Rand
// satisfies it; tests substitute fixed sequences.
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRandomRNG creates an RNG seeded from the runtime's entropy source.
func NewRandomRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// FillBinary sets each cell alive with probability one half.
func FillBinary(src Source, cells []bool) {
	for i := range cells {
		cells[i] = src.IntN(2) == 1
	}
}
