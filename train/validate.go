package train

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/random"
	"github.com/katalvlaran/linefit/rules"
)

// validate checks every configuration precondition of Run.
// Order: rule, options, dataset, random source.
//
// Complexity: O(1).
func validate(points []line.Point, rule rules.Rule, src random.Source, opts Options) error {
	if rule == nil {
		return ErrNilRule
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(points) == 0 {
		return ErrEmptyDataset
	}
	if src == nil && (opts.Mode == SampledMode || rule.Stochastic()) {
		return fmt.Errorf("mode=%v stochastic=%t: %w", opts.Mode, rule.Stochastic(), ErrNeedRandSource)
	}

	return nil
}

// Validate checks Options without referencing data, so callers can reject a
// configuration before preparing datasets.
func (opts Options) Validate() error {
	switch opts.Mode {
	case EpochMode, SampledMode:
		// ok
	default:
		return fmt.Errorf("mode=%d: %w", int(opts.Mode), ErrUnknownMode)
	}
	if opts.Budget < 1 {
		return fmt.Errorf("budget=%d: %w", opts.Budget, ErrBadBudget)
	}
	if opts.ReportEvery < 1 {
		return fmt.Errorf("report every=%d: %w", opts.ReportEvery, ErrBadReportInterval)
	}
	if opts.Converge && (opts.Tolerance < 0 || math.IsNaN(opts.Tolerance)) {
		return fmt.Errorf("tolerance=%v: %w", opts.Tolerance, ErrBadTolerance)
	}

	return nil
}
