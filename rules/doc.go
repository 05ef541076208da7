// Package rules implements the three single-sample update rules ("tricks")
// that move a line.Line towards one observed point.
//
//	Simple   - sign of the residual only; fixed or jittered step on m and b.
//	Square   - SGD on squared error: m += lr·x·r, b += lr·r.
//	Absolute - subgradient of absolute error: m ± lr·x, b ± lr by sign(r).
//
// Every rule satisfies the Rule interface and is dispatched once per sample by
// the train package. Rules hold only their immutable parameters; the sole
// state they touch between calls is the random source passed to Apply.
//
// Rules can be built directly (NewSquare, …) or from a tagged Kind:
//
//	r, err := rules.New(rules.Square, 0.01)
//	r.Apply(&l, p, nil)
package rules
