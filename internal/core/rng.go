package core

import "math/rand/v2"

// Random is the source of randomness consumed by the generators. *rand.Rand
// satisfies it, so tests may inject either a seeded generator or a scripted fake.
type Random interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Uniform returns a value in [lo, hi] drawn from src.
func Uniform(src Random, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Chance reports whether a roll against probability p succeeds.
func Chance(src Random, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float64() < p
}
