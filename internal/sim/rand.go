// Package sim advances firework rockets and their particle bursts one frame
// at a time. All randomness comes from an injected Rand so runs are
// reproducible for a fixed seed.
package sim

import "math/rand/v2"

// Rand is the subset of *rand.Rand the simulation draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform draws from [lo, hi). A degenerate band returns lo.
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws from the inclusive range [lo, hi].
func intBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
