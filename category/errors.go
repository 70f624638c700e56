// SPDX-License-Identifier: MIT
// Package: hyperprep/category
//
// errors.go - sentinel errors for the category package.

package category

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrLengthMismatch indicates the label count differs from the stacked
	// sample (row) count.
	ErrLengthMismatch = fmt.Errorf("category: labels and rows differ in length: %w", hyperprep.ErrLengthMismatch)

	// ErrEmptyInput indicates there are no samples to regroup.
	ErrEmptyInput = fmt.Errorf("category: no samples: %w", hyperprep.ErrDegenerateInput)
)

// categoryErrorf tags err with the operation name and an optional detail.
func categoryErrorf(op string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
