// SPDX-License-Identifier: MIT
// Package: hyperprep/config
//
// errors.go - sentinel errors for option resolution.

package config

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrNoSeries indicates defaults were requested for an empty series list.
	ErrNoSeries = fmt.Errorf("config: at least one series is required: %w", hyperprep.ErrDegenerateInput)

	// ErrOptionType indicates an option holding a value of the wrong Go type.
	ErrOptionType = fmt.Errorf("config: option has wrong type: %w", hyperprep.ErrConfiguration)

	// ErrBadNDims indicates ndims outside {1, 2, 3}.
	ErrBadNDims = fmt.Errorf("config: ndims must be 1, 2 or 3: %w", hyperprep.ErrConfiguration)

	// ErrExploreDims indicates explore mode on one-dimensional samples.
	ErrExploreDims = fmt.Errorf("config: explore requires more than one dimension per sample: %w", hyperprep.ErrConfiguration)

	// ErrBadValue indicates a numeric option outside its allowed range.
	ErrBadValue = fmt.Errorf("config: option out of range: %w", hyperprep.ErrConfiguration)

	// ErrMissing indicates a typed getter was asked for an absent option.
	ErrMissing = fmt.Errorf("config: option not set: %w", hyperprep.ErrConfiguration)

	// ErrDecode wraps TOML read and parse failures.
	ErrDecode = fmt.Errorf("config: cannot decode options: %w", hyperprep.ErrConfiguration)
)

// configErrorf tags err with the operation name and a detail.
func configErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
