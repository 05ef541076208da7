package train_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linefit/dataset"
	"github.com/katalvlaran/linefit/evaluate"
	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/random"
	"github.com/katalvlaran/linefit/report"
	"github.com/katalvlaran/linefit/rules"
	"github.com/katalvlaran/linefit/train"
)

// countingRule wraps a Rule and counts applications.
type countingRule struct {
	rules.Rule
	applied int
}

func (c *countingRule) Apply(l *line.Line, p line.Point, src random.Source) {
	c.applied++
	c.Rule.Apply(l, p, src)
}

// mustRules returns one instance of every rule kind, Simple jittered.
func mustRules(t *testing.T, lr float64) []rules.Rule {
	t.Helper()
	simple, err := rules.NewSimple(lr, 2*lr)
	require.NoError(t, err)
	square, err := rules.NewSquare(lr)
	require.NoError(t, err)
	abs, err := rules.NewAbsolute(lr)
	require.NoError(t, err)

	return []rules.Rule{simple, square, abs}
}

// noisyPoints builds a noisy dataset around an arbitrary line.
func noisyPoints(t *testing.T, n int) []line.Point {
	t.Helper()
	pts, err := dataset.Build(line.Line{M: -7, B: 3}, n, 0.5, dataset.WithSeed(13))
	require.NoError(t, err)

	return pts
}

// TestRun_ConvergesAtZero: a line starting on the target converges at index 0
// for every rule and mode, without applying any step.
func TestRun_ConvergesAtZero(t *testing.T) {
	t.Parallel()

	pts := noisyPoints(t, 50)
	for _, mode := range []train.Mode{train.EpochMode, train.SampledMode} {
		for _, r := range mustRules(t, 0.01) {
			rec := &report.Recorder{}
			opts := train.DefaultOptions()
			opts.Mode = mode
			opts.Target = line.Line{M: 1, B: 0}
			opts.Tolerance = 1e-9

			res, err := train.Run(line.Line{M: 1, B: 0}, pts, r, random.New(1), rec, opts)
			require.NoError(t, err)
			assert.Equal(t, train.Converged, res.State, "%s/%s", mode, r.Name())
			assert.Equal(t, 0, res.Index)
			assert.Equal(t, 0, res.Steps)
			assert.Equal(t, line.Line{M: 1, B: 0}, res.Line)

			kinds := []report.Kind{}
			for _, e := range rec.Events() {
				kinds = append(kinds, e.Kind)
				assert.Equal(t, r.Name(), e.Rule)
			}
			assert.Equal(t, []report.Kind{report.Start, report.Converged, report.Final}, kinds)
		}
	}
}

// TestRun_ExhaustsExactly: a zero tolerance is never met, so exactly Budget
// steps run in either mode.
func TestRun_ExhaustsExactly(t *testing.T) {
	t.Parallel()

	const budget = 7
	pts := noisyPoints(t, 20)
	for _, r := range mustRules(t, 0.01) {
		for _, mode := range []train.Mode{train.EpochMode, train.SampledMode} {
			cr := &countingRule{Rule: r}
			rec := &report.Recorder{}
			opts := train.Options{
				Mode:        mode,
				Budget:      budget,
				ReportEvery: 1,
				Converge:    true,
				Tolerance:   0,
				Target:      line.Line{M: -7, B: 3},
			}
			res, err := train.Run(line.Line{M: -7, B: 3}, pts, cr, random.New(4), rec, opts)
			require.NoError(t, err)
			assert.Equal(t, train.Exhausted, res.State)
			assert.Equal(t, budget, res.Steps)
			assert.Equal(t, budget, res.Index)

			want := budget
			if mode == train.EpochMode {
				want = budget * len(pts)
			}
			assert.Equal(t, want, cr.applied, "%s/%s", mode, r.Name())
			assert.Len(t, rec.Filter(report.Progress, ""), budget)
			ex := rec.Filter(report.Exhausted, "")
			require.Len(t, ex, 1)
			assert.Equal(t, budget, ex[0].Index)
		}
	}
}

// TestRun_SquareEndToEnd: target (2,1), 100 noise-free points, initial (0,0),
// Square lr=0.01 for 500 epochs.
func TestRun_SquareEndToEnd(t *testing.T) {
	t.Parallel()

	target := line.Line{M: 2, B: 1}
	pts, err := dataset.Build(target, 100, 0)
	require.NoError(t, err)
	rule, err := rules.NewSquare(0.01)
	require.NoError(t, err)

	opts := train.Options{Mode: train.EpochMode, Budget: 500, ReportEvery: 50, Target: target}
	res, err := train.Run(line.Line{}, pts, rule, nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, train.Exhausted, res.State)
	assert.InDelta(t, 2.0, res.Line.M, 0.05)
	assert.InDelta(t, 1.0, res.Line.B, 0.05)

	m, err := evaluate.Evaluate(res.Line, pts)
	require.NoError(t, err)
	assert.Less(t, m.RMSE, 0.05)
}

// TestRun_EarlyConvergence stops before the budget once within tolerance.
func TestRun_EarlyConvergence(t *testing.T) {
	t.Parallel()

	target := line.Line{M: 2, B: 1}
	pts, err := dataset.Build(target, 100, 0)
	require.NoError(t, err)
	rule, err := rules.NewSquare(0.01)
	require.NoError(t, err)

	opts := train.DefaultOptions()
	opts.Budget = 500
	opts.ReportEvery = train.ReportInterval(opts.Budget, train.DefaultReportDivisor)
	opts.Target = target
	res, err := train.Run(line.Line{}, pts, rule, nil, nil, opts)
	require.NoError(t, err)
	require.Equal(t, train.Converged, res.State)
	assert.Greater(t, res.Index, 0)
	assert.Less(t, res.Index, 500)
	assert.Equal(t, res.Index, res.Steps)
	assert.True(t, res.Line.Within(target, train.DefaultTolerance))
}

// TestRun_SampledMode converges on noise-free data and is reproducible.
func TestRun_SampledMode(t *testing.T) {
	t.Parallel()

	target := line.Line{M: 2, B: 1}
	pts, err := dataset.Build(target, 100, 0)
	require.NoError(t, err)
	rule, err := rules.NewSquare(0.01)
	require.NoError(t, err)

	opts := train.Options{Mode: train.SampledMode, Budget: 20000, ReportEvery: 2000, Target: target}
	a, err := train.Run(line.Line{}, pts, rule, random.New(8), nil, opts)
	require.NoError(t, err)
	b, err := train.Run(line.Line{}, pts, rule, random.New(8), nil, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.InDelta(t, 2.0, a.Line.M, 0.01)
	assert.InDelta(t, 1.0, a.Line.B, 0.01)
}

// TestRun_Progress checks the reporting cadence and that observation does
// not change the outcome.
func TestRun_Progress(t *testing.T) {
	t.Parallel()

	pts := noisyPoints(t, 30)
	rule, err := rules.NewAbsolute(0.01)
	require.NoError(t, err)

	opts := train.Options{Mode: train.EpochMode, Budget: 10, ReportEvery: 3}
	rec := &report.Recorder{}
	watched, err := train.Run(line.Line{}, pts, rule, nil, rec, opts)
	require.NoError(t, err)
	silent, err := train.Run(line.Line{}, pts, rule, nil, report.Discard, opts)
	require.NoError(t, err)
	assert.Equal(t, silent, watched)

	var idx []int
	for _, e := range rec.Filter(report.Progress, "") {
		idx = append(idx, e.Index)
	}
	assert.Equal(t, []int{0, 3, 6, 9}, idx)

	final := rec.Filter(report.Final, "")
	require.Len(t, final, 1)
	assert.Equal(t, watched.Line, final[0].Line)
}

// TestRun_Diverged surfaces non-finite parameters as a distinct state.
func TestRun_Diverged(t *testing.T) {
	t.Parallel()

	pts, err := dataset.Build(line.Line{M: 2, B: 1}, 100, 0)
	require.NoError(t, err)
	rule, err := rules.NewSquare(10)
	require.NoError(t, err)

	rec := &report.Recorder{}
	opts := train.Options{Mode: train.EpochMode, Budget: 1000, ReportEvery: 1, Name: "hot"}
	res, err := train.Run(line.Line{}, pts, rule, nil, rec, opts)
	require.NoError(t, err)
	assert.Equal(t, train.Diverged, res.State)
	assert.False(t, res.Line.IsFinite())
	assert.Less(t, res.Steps, 1000)
	assert.Equal(t, res.Index+1, res.Steps)

	d := rec.Filter(report.Diverged, "hot")
	require.Len(t, d, 1)
	assert.Equal(t, res.Index, d[0].Index)
	for _, e := range rec.Filter(report.Progress, "") {
		assert.True(t, e.Line.IsFinite(), "no non-finite progress at %d", e.Index)
	}
}

// TestRun_ConfigErrors covers every precondition.
func TestRun_ConfigErrors(t *testing.T) {
	t.Parallel()

	pts := noisyPoints(t, 5)
	square, err := rules.NewSquare(0.1)
	require.NoError(t, err)
	jitter, err := rules.NewSimple(0.1, 0.2)
	require.NoError(t, err)
	ok := train.Options{Mode: train.EpochMode, Budget: 3, ReportEvery: 1}

	with := func(f func(*train.Options)) train.Options {
		o := ok
		f(&o)
		return o
	}

	cases := []struct {
		name   string
		points []line.Point
		rule   rules.Rule
		src    random.Source
		opts   train.Options
		want   error
	}{
		{"nil rule", pts, nil, nil, ok, train.ErrNilRule},
		{"zero budget", pts, square, nil, with(func(o *train.Options) { o.Budget = 0 }), train.ErrBadBudget},
		{"zero interval", pts, square, nil, with(func(o *train.Options) { o.ReportEvery = 0 }), train.ErrBadReportInterval},
		{"negative tolerance", pts, square, nil, with(func(o *train.Options) { o.Converge, o.Tolerance = true, -1 }), train.ErrBadTolerance},
		{"nan tolerance", pts, square, nil, with(func(o *train.Options) { o.Converge, o.Tolerance = true, math.NaN() }), train.ErrBadTolerance},
		{"unknown mode", pts, square, nil, with(func(o *train.Options) { o.Mode = train.Mode(5) }), train.ErrUnknownMode},
		{"empty dataset", nil, square, nil, ok, train.ErrEmptyDataset},
		{"sampled without source", pts, square, nil, with(func(o *train.Options) { o.Mode = train.SampledMode }), train.ErrNeedRandSource},
		{"jitter without source", pts, jitter, nil, ok, train.ErrNeedRandSource},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := &report.Recorder{}
			res, err := train.Run(line.Line{M: 4, B: 4}, tc.points, tc.rule, tc.src, rec, tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, line.Line{M: 4, B: 4}, res.Line)
			assert.Empty(t, rec.Events(), "training must not start")
		})
	}
}

// TestReportInterval guards against zero intervals.
func TestReportInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1000, train.ReportInterval(10000, 10))
	assert.Equal(t, 1, train.ReportInterval(5, 10))
	assert.Equal(t, 1, train.ReportInterval(0, 10))
	assert.Equal(t, 1, train.ReportInterval(100, 0))
	assert.Equal(t, 2, train.ReportInterval(100, 50))
}

// TestStrings pins Mode and State names.
func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "epoch", train.EpochMode.String())
	assert.Equal(t, "sampled", train.SampledMode.String())
	assert.Equal(t, "mode(9)", train.Mode(9).String())
	assert.Equal(t, "running", train.Running.String())
	assert.Equal(t, "converged", train.Converged.String())
	assert.Equal(t, "exhausted", train.Exhausted.String())
	assert.Equal(t, "diverged", train.Diverged.String())
	assert.Equal(t, "state(9)", train.State(9).String())
}
