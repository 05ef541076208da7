// Package report defines the structured events emitted while training and
// evaluating a line, and the sinks that consume them.
//
// The core packages never print or log. They hand Events to an Observer:
//
//	Start      {Rule, Target, Initial}
//	Progress   {Rule, Index, Line}
//	Converged  {Rule, Index}
//	Exhausted  {Rule, Index}
//	Diverged   {Rule, Index, Line}
//	Final      {Rule, Line, Target}
//	Reference  {Rule, Line}            least-squares line of the training set
//	Metrics    {Rule, Metrics}
//
// Sinks provided here:
//   - Discard     - drops every event.
//   - ObserverFunc - adapts a plain function.
//   - Recorder    - goroutine-safe in-memory log, used by tests.
//   - ZapObserver - structured logging through go.uber.org/zap.
//
// NewLogger builds the console zap.Logger used by cmd/linefit.
package report
