package report_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/linefit/evaluate"
	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/report"
)

// TestKindString pins event names and the unknown fallback.
func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "start", report.Start.String())
	assert.Equal(t, "exhausted", report.Exhausted.String())
	assert.Equal(t, "metrics", report.Metrics.String())
	assert.Equal(t, "unknown", report.Kind(42).String())
	assert.Equal(t, "unknown", report.Kind(-1).String())
}

// TestRecorder_Concurrent checks the recorder keeps every event under
// concurrent writers and filters by kind and rule.
func TestRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	rec := &report.Recorder{}
	var wg sync.WaitGroup
	for _, rule := range []string{"a", "b"} {
		wg.Add(1)
		go func(rule string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				rec.Observe(report.Event{Kind: report.Progress, Rule: rule, Index: i})
			}
			rec.Observe(report.Event{Kind: report.Final, Rule: rule})
		}(rule)
	}
	wg.Wait()

	assert.Len(t, rec.Events(), 202)
	assert.Len(t, rec.Filter(report.Progress, ""), 200)
	assert.Len(t, rec.Filter(report.Progress, "a"), 100)
	assert.Len(t, rec.Filter(report.Final, "b"), 1)
}

// TestMulti fans out in order.
func TestMulti(t *testing.T) {
	t.Parallel()

	var order []string
	a := report.ObserverFunc(func(report.Event) { order = append(order, "a") })
	b := report.ObserverFunc(func(report.Event) { order = append(order, "b") })
	report.Multi(a, report.Discard, b).Observe(report.Event{})
	assert.Equal(t, []string{"a", "b"}, order)
}

// TestZapObserver verifies levels, messages and structured fields.
func TestZapObserver(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	obs := report.NewZapObserver(zap.New(core))

	obs.Observe(report.Event{Kind: report.Start, Rule: "Square Trick",
		Initial: line.Line{M: 0, B: 0}, Target: line.Line{M: 2, B: 1}})
	obs.Observe(report.Event{Kind: report.Progress, Rule: "Square Trick", Index: 10,
		Line: line.Line{M: 1.5, B: 0.5}})
	obs.Observe(report.Event{Kind: report.Diverged, Rule: "Square Trick", Index: 3})
	obs.Observe(report.Event{Kind: report.Metrics, Rule: "Square Trick",
		Metrics: evaluate.Metrics{Count: 2, AbsoluteError: 1, RMSE: 0.5}})

	require.Equal(t, 4, logs.Len())
	entries := logs.All()

	assert.Equal(t, "training started", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Square Trick", ctx["rule"])
	assert.Equal(t, map[string]interface{}{"m": 2.0, "b": 1.0}, ctx["target"])

	assert.Equal(t, "progress", entries[1].Message)
	assert.Equal(t, int64(10), entries[1].ContextMap()["index"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	metrics := logs.FilterMessage("metrics").All()
	require.Len(t, metrics, 1)
	assert.Equal(t, 0.5, metrics[0].ContextMap()["rmse"])
	assert.Equal(t, 1.0, metrics[0].ContextMap()["absolute_error"])
}

// TestNewLogger checks the console encoder output and level filtering.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := report.NewLogger(report.DefaultLogConfig(false), &buf)
	logger.Debug("hidden")
	logger.Info("visible", zap.Int("index", 7))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "linefit")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, `"index": 7`)

	buf.Reset()
	dev := report.NewLogger(report.DefaultLogConfig(true), &buf)
	dev.Debug("shown")
	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "report_test.go")
}

// TestNewZapObserver_Nil falls back to a no-op logger.
func TestNewZapObserver_Nil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		report.NewZapObserver(nil).Observe(report.Event{Kind: report.Final})
	})
}
