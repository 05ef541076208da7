package report

import (
	"sync"

	"github.com/katalvlaran/linefit/evaluate"
	"github.com/katalvlaran/linefit/line"
)

// Kind classifies an Event.
type Kind int

const (
	// Start is emitted once before the first training step.
	Start Kind = iota
	// Progress is emitted every ReportEvery steps.
	Progress
	// Converged is emitted when the line came within tolerance of the target.
	Converged
	// Exhausted is emitted when the budget ran out without convergence.
	Exhausted
	// Diverged is emitted when a parameter became NaN or ±Inf.
	Diverged
	// Final is emitted once with the trained line.
	Final
	// Reference carries the closed-form least-squares line.
	Reference
	// Metrics carries evaluator output.
	Metrics
)

var kindNames = [...]string{
	Start:     "start",
	Progress:  "progress",
	Converged: "converged",
	Exhausted: "exhausted",
	Diverged:  "diverged",
	Final:     "final",
	Reference: "reference",
	Metrics:   "metrics",
}

// String returns the lower-case event name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Event is one observation. Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	Rule    string           // rule name, e.g. "Square Trick"
	Index   int              // epoch or iteration index
	Line    line.Line        // current, final or reference line
	Target  line.Line        // Start, Final
	Initial line.Line        // Start
	Metrics evaluate.Metrics // Metrics
}

// Observer receives events. Implementations must not retain *Event pointers
// and must not influence training.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts an ordinary function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Discard is an Observer that drops every event.
var Discard Observer = ObserverFunc(func(Event) {})

// Recorder stores every event in arrival order. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe implements Observer.
func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Filter returns recorded events of kind k, optionally restricted to one rule
// (empty rule matches all).
func (r *Recorder) Filter(k Kind, rule string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, e := range r.events {
		if e.Kind == k && (rule == "" || e.Rule == rule) {
			out = append(out, e)
		}
	}

	return out
}

// Multi fans an event out to several observers in order.
func Multi(obs ...Observer) Observer {
	return ObserverFunc(func(e Event) {
		for _, o := range obs {
			o.Observe(e)
		}
	})
}
