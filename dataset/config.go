// SPDX-License-Identifier: MIT
// Package: linefit/dataset
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • src            = nil  (noise-free builds need no randomness)
//   • referenceCount = 0    (dx derives from the requested length)

package dataset

import "github.com/katalvlaran/linefit/random"

// Interval covered by generated x positions.
const (
	MinX = -1.0 // first x position
	MaxX = 1.0  // exclusive upper bound of the default spacing
)

// buildConfig aggregates every knob Build reads.
type buildConfig struct {
	src            random.Source // nil means "no randomness configured"
	referenceCount int           // 0 ⇒ use the requested length
}

// newBuildConfig applies options in order (last wins).
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// step returns the x spacing for a dataset of n points.
func (c buildConfig) step(n int) float64 {
	count := n
	if c.referenceCount > 0 {
		count = c.referenceCount
	}

	return (MaxX - MinX) / float64(count)
}
