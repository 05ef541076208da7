// Package dataset generates the synthetic (x, y) samples a Line is fitted to.
//
// 🚀 What does it build?
//
//	An ordered, fixed-length slice of line.Point laid out on the interval
//	[-1, 1): x_i = -1 + i·dx, and y_i = target.PredictedY(x_i) + u_i with
//	u_i drawn uniformly from [-variation, variation).
//
// ✨ Key features:
//   - noise-free datasets (variation = 0) consume no randomness at all
//   - reproducible noise via WithSeed or a shared stream via WithRand
//   - WithReferenceCount reproduces the legacy fixed-resolution spacing
//
// ⚙️ Usage:
//
//	pts, err := dataset.Build(line.Line{M: 2, B: 1}, 100, 0.05, dataset.WithSeed(7))
//	if err != nil {
//	  // errors.Is(err, dataset.ErrBadSize) etc.
//	}
//
// Complexity: O(n) time, O(n) memory.
package dataset
