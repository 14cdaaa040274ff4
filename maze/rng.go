// Package maze - RNG policy shared by the generator and Scatter.
//
// Determinism: same seed ⇒ identical mazes. No time-based sources are used
// anywhere; callers that want variety pass their own seed or *rand.Rand.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Do not share a source
// passed through WithRand across goroutines.
package maze

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// source resolves the generator for one run.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}
