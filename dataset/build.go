// SPDX-License-Identifier: MIT
// Package: linefit/dataset
//
// build.go - synthetic sample generator around a target line.
//
// Contract:
//   • Build(target, n, variation, opts...) returns exactly n points in
//     increasing x order, or a wrapped sentinel error.
//   • variation == 0 ⇒ every point lies on the target and no draw happens.
//   • variation > 0  ⇒ |y − target.PredictedY(x)| ≤ variation.

package dataset

import (
	"math"

	"github.com/katalvlaran/linefit/line"
)

// MethodBuild prefixes every error returned by Build.
const MethodBuild = "Build"

// Build returns n points x_i = MinX + i·dx with
// y_i = target.PredictedY(x_i) + U[-variation, variation).
//
// Validation order: size, variation, random source.
//
// Complexity: O(n) time, O(n) memory.
func Build(target line.Line, n int, variation float64, opts ...Option) ([]line.Point, error) {
	if n < 1 {
		return nil, datasetErrorf(MethodBuild, ErrBadSize, "n=%d", n)
	}
	if variation < 0 || math.IsNaN(variation) || math.IsInf(variation, 0) {
		return nil, datasetErrorf(MethodBuild, ErrBadVariation, "variation=%v", variation)
	}

	cfg := newBuildConfig(opts...)
	if variation > 0 && cfg.src == nil {
		return nil, datasetErrorf(MethodBuild, ErrNeedRandSource, "variation=%v", variation)
	}

	dx := cfg.step(n)
	out := make([]line.Point, n)

	var x, y float64
	for i := 0; i < n; i++ {
		x = MinX + dx*float64(i)
		y = target.PredictedY(x)
		if variation > 0 {
			y += cfg.src.Uniform(-variation, variation)
		}
		out[i] = line.Point{X: x, Y: y}
	}

	return out, nil
}
