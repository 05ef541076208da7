package rules

import "errors"

var (
	// ErrBadRate indicates a non-positive, NaN or infinite learning rate or
	// step bound, or StepMin > StepMax.
	ErrBadRate = errors.New("rules: invalid learning rate")

	// ErrUnknownKind indicates a Kind (or name) outside Simple/Square/Absolute.
	ErrUnknownKind = errors.New("rules: unknown rule kind")
)
