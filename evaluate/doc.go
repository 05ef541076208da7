// Package evaluate quantifies how well a line.Line fits a sequence of points.
//
// Evaluate makes one deterministic pass and returns five aggregates: total
// absolute error, total squared error, their means, and the root of the mean
// squared error. It never compares against a target and never returns a
// verdict.
//
// LeastSquares returns the closed-form ordinary least-squares line for a point
// sequence. It is the exact regression solution the Square trick approaches,
// and serves as a reference when reporting a trained fit.
package evaluate
