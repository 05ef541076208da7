package experiment

import (
	"github.com/katalvlaran/linefit/line"
	"github.com/katalvlaran/linefit/rules"
	"github.com/katalvlaran/linefit/train"
)

// Config holds every constant of one experiment.
type Config struct {
	// Seed feeds the base random stream (0 ⇒ random.DefaultSeed).
	Seed int64

	// RandomLines draws Target and Initial from U[-LineRange, LineRange),
	// in the order target m, target b, initial m, initial b. When false the
	// Target and Initial fields are used as given.
	RandomLines bool
	LineRange   float64
	Target      line.Line
	Initial     line.Line

	TrainLength    int     // training points
	TestLength     int     // held-out points
	ReferenceCount int     // 0 ⇒ dx = 2/length; otherwise dx = 2/ReferenceCount
	Variation      float64 // noise amplitude for both sets

	// LearningRate drives Square and Absolute, and is the Simple step.
	LearningRate float64
	// SimpleStepMax > LearningRate jitters the Simple step in
	// [LearningRate, SimpleStepMax); 0 keeps it fixed.
	SimpleStepMax float64
	Kinds         []rules.Kind

	Mode          train.Mode
	Budget        int
	ReportDivisor int // progress every Budget/ReportDivisor steps (min 1)
	Converge      bool
	Tolerance     float64
}

// DefaultConfig returns the reference experiment: random lines in
// [-100, 100), 1000 training and 100 test points with ±0.05 noise, learning
// rate 0.001, 10 000 epochs, convergence within 0.001, all three rules.
func DefaultConfig() Config {
	return Config{
		RandomLines:   true,
		LineRange:     100,
		TrainLength:   1000,
		TestLength:    100,
		Variation:     0.05,
		LearningRate:  0.001,
		Kinds:         rules.Kinds(),
		Mode:          train.EpochMode,
		Budget:        train.DefaultBudget,
		ReportDivisor: train.DefaultReportDivisor,
		Converge:      true,
		Tolerance:     train.DefaultTolerance,
	}
}

// trainOptions maps the config onto train.Options for one rule.
func (c Config) trainOptions(name string, target line.Line) train.Options {
	return train.Options{
		Name:        name,
		Mode:        c.Mode,
		Budget:      c.Budget,
		ReportEvery: train.ReportInterval(c.Budget, c.ReportDivisor),
		Converge:    c.Converge,
		Tolerance:   c.Tolerance,
		Target:      target,
	}
}

// newRule builds the rule for kind from the config rates.
func (c Config) newRule(kind rules.Kind) (rules.Rule, error) {
	if kind == rules.Simple && c.SimpleStepMax > 0 {
		return rules.NewSimple(c.LearningRate, c.SimpleStepMax)
	}

	return rules.New(kind, c.LearningRate)
}
