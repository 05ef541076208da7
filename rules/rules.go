package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/random"
)

// Rule adjusts a line in place using a single sample.
type Rule interface {
	// Name is the human-readable label used in reports ("Square Trick").
	Name() string
	// Apply moves *l according to p. src may be nil for non-stochastic rules.
	Apply(l *line.Line, p line.Point, src random.Source)
	// Stochastic reports whether Apply draws from src.
	Stochastic() bool
}

// Kind tags the three rule variants.
type Kind int

const (
	// Simple selects the direction-only rule.
	Simple Kind = iota
	// Square selects the squared-error gradient rule.
	Square
	// Absolute selects the absolute-error subgradient rule.
	Absolute
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Square:
		return "square"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kinds lists every supported variant in canonical order.
func Kinds() []Kind {
	return []Kind{Simple, Square, Absolute}
}

// ParseKind maps "simple", "square" or "absolute" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// New builds the rule for kind with a single rate. Simple uses rate as a fixed
// step (StepMin == StepMax == rate).
func New(kind Kind, rate float64) (Rule, error) {
	switch kind {
	case Simple:
		return NewSimple(rate, rate)
	case Square:
		return NewSquare(rate)
	case Absolute:
		return NewAbsolute(rate)
	default:
		return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
	}
}

// validRate reports whether v is a usable positive finite parameter.
func validRate(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// SimpleRule moves both parameters by a small step in the direction that
// reduces the residual, ignoring its magnitude and the value of x.
type SimpleRule struct {
	StepMin float64 // lower bound of the per-call step
	StepMax float64 // upper bound; equal to StepMin for a fixed step
}

// NewSimple returns a SimpleRule drawing steps from [lo, hi).
// lo == hi gives a fixed step and makes the rule deterministic.
func NewSimple(lo, hi float64) (*SimpleRule, error) {
	if !validRate(lo) || !validRate(hi) || lo > hi {
		return nil, fmt.Errorf("NewSimple(%v, %v): %w", lo, hi, ErrBadRate)
	}

	return &SimpleRule{StepMin: lo, StepMax: hi}, nil
}

// Name implements Rule.
func (*SimpleRule) Name() string { return "Simple Trick" }

// Stochastic implements Rule.
func (r *SimpleRule) Stochastic() bool { return r.StepMin != r.StepMax }

// Apply implements Rule. The m-step is drawn before the b-step.
func (r *SimpleRule) Apply(l *line.Line, p line.Point, src random.Source) {
	dm, db := r.StepMin, r.StepMin
	if r.Stochastic() {
		dm = src.Uniform(r.StepMin, r.StepMax)
		db = src.Uniform(r.StepMin, r.StepMax)
	}
	if l.PredictedY(p.X) > p.Y {
		l.M -= dm
		l.B -= db
	} else {
		l.M += dm
		l.B += db
	}
}

// SquareRule is one step of stochastic gradient descent on (y − ŷ)².
type SquareRule struct {
	LearningRate float64
}

// NewSquare returns a SquareRule with the given learning rate.
func NewSquare(lr float64) (*SquareRule, error) {
	if !validRate(lr) {
		return nil, fmt.Errorf("NewSquare(%v): %w", lr, ErrBadRate)
	}

	return &SquareRule{LearningRate: lr}, nil
}

// Name implements Rule.
func (*SquareRule) Name() string { return "Square Trick" }

// Stochastic implements Rule.
func (*SquareRule) Stochastic() bool { return false }

// Apply implements Rule.
func (r *SquareRule) Apply(l *line.Line, p line.Point, _ random.Source) {
	d := l.Residual(p)
	l.M += r.LearningRate * p.X * d
	l.B += r.LearningRate * d
}

// AbsoluteRule is one subgradient step on |y − ŷ|: a fixed move scaled by x,
// signed by the residual.
type AbsoluteRule struct {
	LearningRate float64
}

// NewAbsolute returns an AbsoluteRule with the given learning rate.
func NewAbsolute(lr float64) (*AbsoluteRule, error) {
	if !validRate(lr) {
		return nil, fmt.Errorf("NewAbsolute(%v): %w", lr, ErrBadRate)
	}

	return &AbsoluteRule{LearningRate: lr}, nil
}

// Name implements Rule.
func (*AbsoluteRule) Name() string { return "Absolute Trick" }

// Stochastic implements Rule.
func (*AbsoluteRule) Stochastic() bool { return false }

// Apply implements Rule. A zero residual takes the downward branch.
func (r *AbsoluteRule) Apply(l *line.Line, p line.Point, _ random.Source) {
	if l.Residual(p) > 0 {
		l.M += r.LearningRate * p.X
		l.B += r.LearningRate
	} else {
		l.M -= r.LearningRate * p.X
		l.B -= r.LearningRate
	}
}
