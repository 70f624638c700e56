// SPDX-License-Identifier: MIT
// Package: hyperprep/series
//
// errors.go - sentinel errors for the series package.
//
// Each sentinel wraps one hyperprep kind; match with errors.Is against either.

package series

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrEmpty indicates a dataset with no series, or a series with no samples
	// where at least one is required.
	ErrEmpty = fmt.Errorf("series: empty dataset: %w", hyperprep.ErrDegenerateInput)

	// ErrNilSeries indicates a nil matrix inside a dataset.
	ErrNilSeries = fmt.Errorf("series: nil series: %w", hyperprep.ErrDegenerateInput)

	// ErrShapeMismatch indicates series whose column counts differ where a
	// shared frame is required.
	ErrShapeMismatch = fmt.Errorf("series: column count mismatch: %w", hyperprep.ErrShapeMismatch)

	// ErrRaggedFrame indicates frame columns of unequal length.
	ErrRaggedFrame = fmt.Errorf("series: frame columns differ in length: %w", hyperprep.ErrShapeMismatch)

	// ErrUnsupportedInput indicates an Input that is none of: single matrix,
	// collection of matrices, single frame, collection of frames.
	ErrUnsupportedInput = fmt.Errorf("series: data must be a matrix, a list of matrices, a frame or a list of frames: %w", hyperprep.ErrConfiguration)
)

// seriesErrorf tags err with the operation name and an optional detail.
func seriesErrorf(op string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
