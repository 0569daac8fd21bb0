package utils

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding of the
// board randomizer. The same seed always reproduces the same board.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic generator from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for bulk operations.
func (r *RNG) Source() *rand.Rand { return r.r }
