// SPDX-License-Identifier: MIT
// Package: linefit/dataset
//
// options.go - functional options for Build.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • Determinism is explicit: seeding goes through WithSeed or WithRand.

package dataset

import "github.com/katalvlaran/linefit/random"

// Option customizes Build by mutating a buildConfig before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// WithSeed attaches a fresh deterministic source seeded with seed
// (seed 0 maps to random.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.src = random.New(seed)
	}
}

// WithRand shares an existing source. Draws advance the caller's stream, so
// building train and test sets from one source yields independent noise.
// Panics on nil.
func WithRand(src random.Source) Option {
	if src == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.src = src
	}
}

// WithReferenceCount fixes the spacing resolution: dx = width/k regardless of
// the requested length. When n ≠ k the points no longer span [-1, 1).
// Panics if k < 1.
func WithReferenceCount(k int) Option {
	if k < 1 {
		panic("dataset: WithReferenceCount(k<1)")
	}
	return func(c *buildConfig) {
		c.referenceCount = k
	}
}
