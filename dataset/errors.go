// SPDX-License-Identifier: MIT
// Package: linefit/dataset
//
// errors.go - sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w via datasetErrorf, never baked into sentinels.
//   • Build never panics on caller data; option constructors (WithX) do.

package dataset

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a requested sample count n < 1.
var ErrBadSize = errors.New("dataset: invalid size")

// ErrBadVariation indicates a negative, NaN or infinite noise amplitude.
var ErrBadVariation = errors.New("dataset: invalid variation")

// ErrNeedRandSource indicates variation > 0 without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("dataset: random source is required")

// datasetErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
// Result form: "<method>: <detail>: <err>".
func datasetErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
