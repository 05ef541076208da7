package train

import "errors"

// Configuration errors. Run returns them before touching the line; callers
// branch with errors.Is.
var (
	// ErrBadBudget indicates Budget < 1.
	ErrBadBudget = errors.New("train: budget must be >= 1")

	// ErrBadReportInterval indicates ReportEvery < 1.
	ErrBadReportInterval = errors.New("train: report interval must be >= 1")

	// ErrBadTolerance indicates a negative or NaN tolerance with Converge set.
	ErrBadTolerance = errors.New("train: invalid convergence tolerance")

	// ErrUnknownMode indicates a Mode outside EpochMode/SampledMode.
	ErrUnknownMode = errors.New("train: unknown mode")

	// ErrEmptyDataset indicates a zero-length training set.
	ErrEmptyDataset = errors.New("train: dataset must be non-empty")

	// ErrNilRule indicates a nil update rule.
	ErrNilRule = errors.New("train: rule is nil")

	// ErrNeedRandSource indicates SampledMode or a stochastic rule without a
	// random source.
	ErrNeedRandSource = errors.New("train: random source is required")
)
