package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linefit/dataset"
	"github.com/katalvlaran/linefit/evaluate"
	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/random"
	"github.com/katalvlaran/linefit/report"
	"github.com/katalvlaran/linefit/rules"
	"github.com/katalvlaran/linefit/train"
)

var (
	// ErrNoRules indicates an empty Kinds list.
	ErrNoRules = errors.New("experiment: no rules selected")

	// ErrBadLineRange indicates RandomLines with a non-positive or
	// non-finite LineRange.
	ErrBadLineRange = errors.New("experiment: invalid line range")
)

// ReferenceRule labels the least-squares Reference event.
const ReferenceRule = "Least Squares"

// Outcome is the result of one rule.
type Outcome struct {
	Kind      rules.Kind
	Rule      string
	Result    train.Result
	Metrics   evaluate.Metrics
	Evaluated bool // false when the run diverged
}

// Summary is the result of one experiment.
type Summary struct {
	Target    line.Line
	Initial   line.Line
	Reference line.Line // least-squares fit of the training set
	Outcomes  []Outcome // in Config.Kinds order
}

// Run executes the experiment described by cfg and reports to obs.
//
// Stages:
//  1. Validate cfg and build one rule per kind.
//  2. Draw the target/initial lines, then the training and test sets, from
//     the base stream, in that order.
//  3. Derive one child stream per rule.
//  4. Train every rule concurrently; evaluate each finite result on the test
//     set and emit a Metrics event.
//
// ctx cancels runs that have not started yet; a started run always finishes
// its budget.
func Run(ctx context.Context, cfg Config, obs report.Observer) (Summary, error) {
	if obs == nil {
		obs = report.Discard
	}
	if len(cfg.Kinds) == 0 {
		return Summary{}, ErrNoRules
	}
	ruleSet := make([]rules.Rule, len(cfg.Kinds))
	for i, k := range cfg.Kinds {
		r, err := cfg.newRule(k)
		if err != nil {
			return Summary{}, fmt.Errorf("experiment: rule %v: %w", k, err)
		}
		ruleSet[i] = r
	}

	if err := cfg.trainOptions("", line.Line{}).Validate(); err != nil {
		return Summary{}, fmt.Errorf("experiment: %w", err)
	}

	base := random.New(cfg.Seed)
	sum := Summary{Target: cfg.Target, Initial: cfg.Initial}
	if cfg.RandomLines {
		if !(cfg.LineRange > 0) || math.IsInf(cfg.LineRange, 0) {
			return Summary{}, fmt.Errorf("range=%v: %w", cfg.LineRange, ErrBadLineRange)
		}
		sum.Target = line.Line{M: base.Uniform(-cfg.LineRange, cfg.LineRange), B: base.Uniform(-cfg.LineRange, cfg.LineRange)}
		sum.Initial = line.Line{M: base.Uniform(-cfg.LineRange, cfg.LineRange), B: base.Uniform(-cfg.LineRange, cfg.LineRange)}
	}

	opts := []dataset.Option{dataset.WithRand(base)}
	if cfg.ReferenceCount > 0 {
		opts = append(opts, dataset.WithReferenceCount(cfg.ReferenceCount))
	}
	trainSet, err := dataset.Build(sum.Target, cfg.TrainLength, cfg.Variation, opts...)
	if err != nil {
		return Summary{}, fmt.Errorf("experiment: training set: %w", err)
	}
	testSet, err := dataset.Build(sum.Target, cfg.TestLength, cfg.Variation, opts...)
	if err != nil {
		return Summary{}, fmt.Errorf("experiment: test set: %w", err)
	}

	if ref, err := evaluate.LeastSquares(trainSet); err == nil {
		sum.Reference = ref
		obs.Observe(report.Event{Kind: report.Reference, Rule: ReferenceRule, Line: ref})
	}

	streams := make([]*random.Rand, len(ruleSet))
	for i := range ruleSet {
		streams[i] = base.Derive(uint64(i))
	}

	sum.Outcomes = make([]Outcome, len(ruleSet))
	g, ctx := errgroup.WithContext(ctx)
	for i := range ruleSet {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rule := ruleSet[i]
			res, err := train.Run(sum.Initial, trainSet, rule, streams[i], obs, cfg.trainOptions(rule.Name(), sum.Target))
			if err != nil {
				return fmt.Errorf("experiment: %s: %w", rule.Name(), err)
			}
			out := Outcome{Kind: cfg.Kinds[i], Rule: rule.Name(), Result: res}
			if res.State != train.Diverged {
				m, err := evaluate.Evaluate(res.Line, testSet)
				if err != nil {
					return fmt.Errorf("experiment: %s: %w", rule.Name(), err)
				}
				out.Metrics, out.Evaluated = m, true
				obs.Observe(report.Event{Kind: report.Metrics, Rule: rule.Name(), Metrics: m})
			}
			sum.Outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return sum, nil
}
