package train

import (
	"fmt"

	"github.com/katalvlaran/linefit/line"
)

// Mode selects how a training step visits the dataset.
type Mode int

const (
	// EpochMode applies the rule to every point, in order, per step.
	EpochMode Mode = iota

	// SampledMode applies the rule to one uniformly drawn point per step.
	SampledMode
)

// String returns "epoch" or "sampled".
func (m Mode) String() string {
	switch m {
	case EpochMode:
		return "epoch"
	case SampledMode:
		return "sampled"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the trainer's lifecycle position. Every state except Running is
// terminal.
type State int

const (
	Running State = iota
	Converged
	Exhausted
	Diverged
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures Run.
//
// Fields:
//   - Name        - label carried on every event; empty ⇒ rule.Name().
//   - Mode        - EpochMode or SampledMode.
//   - Budget      - number of epochs (EpochMode) or iterations (SampledMode), ≥ 1.
//   - ReportEvery - emit a Progress event when index % ReportEvery == 0, ≥ 1.
//   - Converge    - enable the early-convergence test.
//   - Tolerance   - strict per-parameter bound |Δm|,|Δb| < Tolerance, ≥ 0.
//   - Target      - line compared against by the convergence test and
//     reported on Start/Final events.
type Options struct {
	Name        string
	Mode        Mode
	Budget      int
	ReportEvery int
	Converge    bool
	Tolerance   float64
	Target      line.Line
}

// Defaults mirror the reference experiment: 10 000 epochs, a progress event
// every tenth of the budget, convergence within 0.001.
const (
	DefaultBudget         = 10000
	DefaultReportDivisor  = 10
	DefaultTolerance      = 0.001
	defaultConvergeEnable = true
)

// DefaultOptions returns Options with the defaults above and a zero Target.
func DefaultOptions() Options {
	return Options{
		Mode:        EpochMode,
		Budget:      DefaultBudget,
		ReportEvery: ReportInterval(DefaultBudget, DefaultReportDivisor),
		Converge:    defaultConvergeEnable,
		Tolerance:   DefaultTolerance,
	}
}

// ReportInterval returns budget/divisor clamped to at least 1, so that a
// budget smaller than the divisor still reports on every step. A non-positive
// divisor reports every step.
func ReportInterval(budget, divisor int) int {
	if divisor <= 0 {
		return 1
	}
	if k := budget / divisor; k > 1 {
		return k
	}

	return 1
}

// Result is the outcome of Run.
type Result struct {
	Line  line.Line // final parameters
	State State     // Converged, Exhausted or Diverged
	Index int       // step index at which the terminal state was reached
	Steps int       // steps actually applied
}
