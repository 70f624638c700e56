// SPDX-License-Identifier: MIT
// Package: hyperprep/smooth
//
// errors.go - sentinel errors for the smooth package.

package smooth

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrTooFewSamples indicates fewer than two samples; a single point has
	// no curve to interpolate.
	ErrTooFewSamples = fmt.Errorf("smooth: at least two samples required: %w", hyperprep.ErrDegenerateInput)

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = fmt.Errorf("smooth: NaN or Inf sample: %w", hyperprep.ErrDegenerateInput)

	// ErrBadFactor indicates an upsampling factor below 1.
	ErrBadFactor = fmt.Errorf("smooth: interpolation factor must be >= 1: %w", hyperprep.ErrConfiguration)

	// ErrNilSeries indicates a nil matrix in a series list.
	ErrNilSeries = fmt.Errorf("smooth: nil series: %w", hyperprep.ErrDegenerateInput)
)

// smoothErrorf tags err with the operation name and an optional detail.
func smoothErrorf(op string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
