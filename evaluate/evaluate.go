// SPDX-License-Identifier: MIT
// Package: linefit/evaluate
//
// Purpose:
//   - Aggregate error metrics of a fitted line over a point sequence.
//   - Closed-form least-squares reference line.
//
// Determinism & Performance:
//   - Fixed index order for every accumulation; O(n) time, O(1) extra space.
//   - Empty input is rejected, never divided by.

package evaluate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linefit/line"
)

// Operation names used to prefix wrapped errors.
const (
	opEvaluate     = "Evaluate"
	opLeastSquares = "LeastSquares"
)

var (
	// ErrEmptySequence indicates a metric or fit was requested over zero points.
	ErrEmptySequence = errors.New("evaluate: point sequence must be non-empty")

	// ErrDegenerate indicates every x is identical, so the slope is undefined.
	ErrDegenerate = errors.New("evaluate: x values have zero variance")
)

// Metrics holds the fit-quality aggregates of one evaluation.
type Metrics struct {
	Count             int     // number of points evaluated
	AbsoluteError     float64 // Σ|ŷ−y|
	SquareError       float64 // Σ(ŷ−y)²
	MeanAbsoluteError float64 // AbsoluteError / Count
	MeanSquareError   float64 // SquareError / Count
	RMSE              float64 // sqrt(MeanSquareError)
}

// Evaluate computes Metrics for l over points in a single pass.
//
// Errors:
//   - ErrEmptySequence when len(points) == 0.
//
// Complexity: O(n) time, O(1) space.
func Evaluate(l line.Line, points []line.Point) (Metrics, error) {
	if len(points) == 0 {
		return Metrics{}, fmt.Errorf("%s: %w", opEvaluate, ErrEmptySequence)
	}

	var m Metrics
	var dy float64
	for _, p := range points {
		dy = math.Abs(l.PredictedY(p.X) - p.Y)
		m.AbsoluteError += dy
		m.SquareError += dy * dy
	}

	m.Count = len(points)
	n := float64(m.Count)
	m.MeanAbsoluteError = m.AbsoluteError / n
	m.MeanSquareError = m.SquareError / n
	m.RMSE = math.Sqrt(m.MeanSquareError)

	return m, nil
}

// LeastSquares returns the line minimizing Σ(y − m·x − b)² over points.
//
// Implementation:
//   - Stage 1: means x̄, ȳ.
//   - Stage 2: centered sums Sxx = Σ(x−x̄)², Sxy = Σ(x−x̄)(y−ȳ).
//   - Stage 3: m = Sxy/Sxx, b = ȳ − m·x̄.
//
// Centering keeps the normal equations well conditioned for x far from 0.
//
// Errors:
//   - ErrEmptySequence when len(points) == 0.
//   - ErrDegenerate when Sxx == 0 (single point or constant x).
//
// Complexity: O(n) time, O(1) space.
func LeastSquares(points []line.Point) (line.Line, error) {
	if len(points) == 0 {
		return line.Line{}, fmt.Errorf("%s: %w", opLeastSquares, ErrEmptySequence)
	}

	var meanX, meanY float64
	for _, p := range points {
		meanX += p.X
		meanY += p.Y
	}
	invN := 1.0 / float64(len(points))
	meanX *= invN
	meanY *= invN

	var sxx, sxy, dx float64
	for _, p := range points {
		dx = p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return line.Line{}, fmt.Errorf("%s: n=%d: %w", opLeastSquares, len(points), ErrDegenerate)
	}

	m := sxy / sxx

	return line.Line{M: m, B: meanY - m*meanX}, nil
}
