package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x6c617661))}
}

// Float32 returns a value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// Range returns a value in [lo, hi). Reversed bounds are swapped.
func (r *RNG) Range(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + (hi-lo)*r.r.Float32()
}

// Signed returns a value in [-1, 1).
func (r *RNG) Signed() float32 { return r.Range(-1, 1) }

// Int64 returns a non-negative pseudo-random int64.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
