// Package linefit fits a two-parameter line y = m·x + b to noisy synthetic
// data with three hand-derived per-sample update rules, and reports how well
// each fit generalizes.
//
// 🚀 What is inside?
//
//	line/       - Line (m, b) and Point (x, y) value types
//	random/     - injectable, seedable random source with stream derivation
//	dataset/    - evenly spaced samples around a target line, optional noise
//	rules/      - Simple, Square and Absolute tricks
//	train/      - epoch / sampled-iteration trainer with early convergence
//	evaluate/   - absolute, squared, mean and RMS error; least-squares reference
//	report/     - structured events, observers, zap logging
//	experiment/ - the reference comparison of all three rules
//	cmd/linefit - runs the reference comparison and logs it
//
// Quick example:
//
//	pts, _ := dataset.Build(line.Line{M: 2, B: 1}, 100, 0)
//	rule, _ := rules.NewSquare(0.01)
//	opts := train.Options{Budget: 500, ReportEvery: 50}
//	res, _ := train.Run(line.Line{}, pts, rule, nil, report.Discard, opts)
//	m, _ := evaluate.Evaluate(res.Line, pts) // m.RMSE ≈ 0
//
// Everything is deterministic for a given seed; nothing reads global state.
package linefit
