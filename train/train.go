package train

import (
	"fmt"

	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/random"
	"github.com/katalvlaran/linefit/report"
	"github.com/katalvlaran/linefit/rules"
)

// MethodRun prefixes configuration errors returned by Run.
const MethodRun = "Run"

// Run trains a copy of initial on points with rule and returns the final line
// and terminal state.
//
// Algorithm (step i = 0 … Budget-1):
//  1. If Converge and the line is within Tolerance of Target ⇒ Converged at i.
//  2. Apply the rule: every point in order (EpochMode) or one point drawn
//     with src.Intn (SampledMode).
//  3. If a parameter is NaN/±Inf ⇒ Diverged at i.
//  4. If i % ReportEvery == 0 ⇒ Progress event.
//
// After the loop one last convergence check runs at index Budget; otherwise
// the state is Exhausted with exactly Budget steps applied.
//
// Events: Start, Progress*, one of Converged/Exhausted/Diverged, Final.
// A nil obs is treated as report.Discard.
//
// Errors: configuration only (see errors.go); nothing is emitted on error.
func Run(
	initial line.Line,
	points []line.Point,
	rule rules.Rule,
	src random.Source,
	obs report.Observer,
	opts Options,
) (Result, error) {
	if err := validate(points, rule, src, opts); err != nil {
		return Result{Line: initial}, fmt.Errorf("%s: %w", MethodRun, err)
	}
	if obs == nil {
		obs = report.Discard
	}
	name := opts.Name
	if name == "" {
		name = rule.Name()
	}

	t := trainer{
		line:   initial,
		points: points,
		rule:   rule,
		src:    src,
		obs:    obs,
		opts:   opts,
		name:   name,
	}
	t.emit(report.Event{Kind: report.Start, Target: opts.Target, Initial: initial})
	res := t.loop()
	t.emit(report.Event{Kind: report.Final, Line: res.Line, Target: opts.Target})

	return res, nil
}

// trainer holds the mutable state of one Run invocation.
type trainer struct {
	line   line.Line
	points []line.Point
	rule   rules.Rule
	src    random.Source
	obs    report.Observer
	opts   Options
	name   string
	steps  int
}

func (t *trainer) emit(e report.Event) {
	e.Rule = t.name
	t.obs.Observe(e)
}

// converged applies the optional early-stop test.
func (t *trainer) converged() bool {
	return t.opts.Converge && t.line.Within(t.opts.Target, t.opts.Tolerance)
}

// step applies one epoch or one sampled iteration.
func (t *trainer) step() {
	if t.opts.Mode == SampledMode {
		t.rule.Apply(&t.line, random.Pick(t.src, t.points), t.src)
		return
	}
	for _, p := range t.points {
		t.rule.Apply(&t.line, p, t.src)
	}
}

func (t *trainer) finish(s State, index int) Result {
	switch s {
	case Converged:
		t.emit(report.Event{Kind: report.Converged, Index: index})
	case Diverged:
		t.emit(report.Event{Kind: report.Diverged, Index: index, Line: t.line})
	case Exhausted:
		t.emit(report.Event{Kind: report.Exhausted, Index: index})
	}

	return Result{Line: t.line, State: s, Index: index, Steps: t.steps}
}

func (t *trainer) loop() Result {
	for i := 0; i < t.opts.Budget; i++ {
		if t.converged() {
			return t.finish(Converged, i)
		}
		t.step()
		t.steps++
		if !t.line.IsFinite() {
			return t.finish(Diverged, i)
		}
		if i%t.opts.ReportEvery == 0 {
			t.emit(report.Event{Kind: report.Progress, Index: i, Line: t.line})
		}
	}
	if t.converged() {
		return t.finish(Converged, t.opts.Budget)
	}

	return t.finish(Exhausted, t.opts.Budget)
}
