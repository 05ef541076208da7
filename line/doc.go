// Package line defines the two-parameter linear model fitted by linefit and the
// sample points it is fitted to.
//
// A Line is the pair (M, B) describing y = M·x + B. A Point is an immutable
// observation (X, Y). Both are plain value types: copying a Line snapshots it,
// and the trainer mutates its private copy through a *Line once per update.
//
// PredictedY is the shared evaluation primitive used by every update rule and
// by the evaluator:
//
//	l := line.Line{M: 2, B: 1}
//	y := l.PredictedY(0.5) // 2.0
//
// Residuals follow the "observed minus predicted" convention:
//
//	r := l.Residual(line.Point{X: 0.5, Y: 2.5}) // 0.5
package line
