// SPDX-License-Identifier: MIT
// Package: hyperprep/colormap
//
// errors.go - sentinel errors for the colormap package.

package colormap

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrNoValues indicates an empty value collection.
	ErrNoValues = fmt.Errorf("colormap: no values to bin: %w", hyperprep.ErrDegenerateInput)

	// ErrNonFinite indicates a NaN or ±Inf value. Bins are defined over finite
	// ranges only, so such inputs are rejected rather than assigned a fallback bin.
	ErrNonFinite = fmt.Errorf("colormap: NaN or Inf value: %w", hyperprep.ErrDegenerateInput)

	// ErrConstantValues indicates that every value is identical. A zero-width
	// range has no meaningful bins, so no fallback bin is chosen.
	ErrConstantValues = fmt.Errorf("colormap: all values are identical: %w", hyperprep.ErrDegenerateInput)

	// ErrBadResolution indicates res < 1.
	ErrBadResolution = fmt.Errorf("colormap: resolution must be >= 1: %w", hyperprep.ErrConfiguration)

	// ErrUnknownPalette indicates a palette name the provider cannot resolve.
	ErrUnknownPalette = fmt.Errorf("colormap: unknown palette: %w", hyperprep.ErrConfiguration)

	// ErrPaletteSize indicates a provider returned a palette whose length
	// differs from the requested resolution.
	ErrPaletteSize = fmt.Errorf("colormap: palette size differs from resolution: %w", hyperprep.ErrConfiguration)
)

// colormapErrorf tags err with the operation name and an optional detail.
func colormapErrorf(op string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
