// SPDX-License-Identifier: MIT
// Package: linefit/line
//
// line.go - Line and Point value types.
//
// Contract:
//   • PredictedY is exact: M*x + B with no hidden rescaling.
//   • Residual is observed − predicted (p.Y − PredictedY(p.X)).
//   • No method allocates, panics, or mutates the receiver.

package line

import (
	"fmt"
	"math"
)

// Point is a single (x, y) observation.
type Point struct {
	X float64 // independent variable
	Y float64 // observed value
}

// Line is the model y = M*x + B.
type Line struct {
	M float64 // slope
	B float64 // intercept
}

// PredictedY returns M*x + B.
// Complexity: O(1).
func (l Line) PredictedY(x float64) float64 {
	return l.M*x + l.B
}

// Residual returns p.Y − l.PredictedY(p.X).
// Positive residual means the line passes below the point.
func (l Line) Residual(p Point) float64 {
	return p.Y - l.PredictedY(p.X)
}

// IsFinite reports whether both parameters are neither NaN nor ±Inf.
func (l Line) IsFinite() bool {
	return !math.IsNaN(l.M) && !math.IsInf(l.M, 0) &&
		!math.IsNaN(l.B) && !math.IsInf(l.B, 0)
}

// Within reports whether |l.M−t.M| < eps and |l.B−t.B| < eps.
// The comparison is strict, so eps == 0 never matches.
func (l Line) Within(t Line, eps float64) bool {
	return math.Abs(l.M-t.M) < eps && math.Abs(l.B-t.B) < eps
}

// String renders the line as "Line(m, b)" with four decimals.
func (l Line) String() string {
	return fmt.Sprintf("Line(%.4f, %.4f)", l.M, l.B)
}

// String renders the point as "(x, y)" with four decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}
