// Package random provides the injectable random source consumed by dataset
// noise, sampled-iteration point selection and Simple-trick step jitter.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: a single factory; no time-based or global sources.
//   - Independence: Derive produces decorrelated child streams so that
//     concurrent runs never share a *rand.Rand.
//
// Concurrency:
//   - Rand is NOT goroutine-safe (it wraps math/rand.Rand). Use Derive to give
//     each goroutine its own stream.
package random

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Source is the minimal random capability required by linefit.
// Implementations must be swappable for deterministic fakes in tests.
type Source interface {
	// Uniform returns a real drawn uniformly from [lo, hi).
	Uniform(lo, hi float64) float64
	// Intn returns an integer drawn uniformly from [0, n). n must be > 0.
	Intn(n int) int
}

// Rand is the default Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Wrap adapts an existing *rand.Rand. A nil r yields New(0).
func Wrap(r *rand.Rand) *Rand {
	if r == nil {
		return New(0)
	}

	return &Rand{r: r}
}

// Uniform implements Source.
func (g *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.r.Float64()
}

// Intn implements Source.
func (g *Rand) Intn(n int) int {
	return g.r.Intn(n)
}

// Derive creates an independent deterministic child stream identified by
// stream. The parent is advanced by one Int63 draw so that deriving the same
// stream id twice still yields distinct children.
//
// Usage:
//   - Call during setup (not in hot loops) to hand one stream per run.
//
// Complexity: O(1).
func (g *Rand) Derive(stream uint64) *Rand {
	parent := g.r.Int63()

	return &Rand{r: rand.New(rand.NewSource(deriveSeed(parent, stream)))}
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer constants.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Pick returns one element of s chosen uniformly with replacement.
// s must be non-empty; callers validate length before the hot loop.
func Pick[T any](src Source, s []T) T {
	return s[src.Intn(len(s))]
}
