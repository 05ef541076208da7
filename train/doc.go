// Package train drives an update rule over a dataset until the line converges
// to a target, the budget runs out, or the parameters diverge.
//
// 🚀 Modes
//
//	EpochMode   - each step applies the rule once per point, in dataset order.
//	SampledMode - each step applies the rule to one point drawn uniformly
//	              (with replacement) from the dataset.
//
// ⚙️ State machine
//
//	Running ──(within tolerance at step i)──▶ Converged{Index: i}
//	Running ──(non-finite parameter)──────▶ Diverged{Index: i}
//	Running ──(Budget steps applied)──────▶ Exhausted{Index: Budget}
//
// The convergence test runs once per step, before the step's updates, and once
// more after the last step. A line that starts at the target converges at
// index 0; a zero tolerance can never be met, so exactly Budget steps run.
//
// Usage:
//
//	opts := train.DefaultOptions()
//	opts.Budget = 500
//	opts.Target = line.Line{M: 2, B: 1}
//	res, err := train.Run(line.Line{}, pts, rule, nil, report.Discard, opts)
//
// Complexity: O(Budget·n) rule applications in EpochMode, O(Budget) in
// SampledMode; O(1) extra memory.
package train
