// SPDX-License-Identifier: MIT
// Package: hyperprep
//
// errors.go - the shared error taxonomy.
//
// Error policy:
//   • Every failure reported by a subpackage belongs to exactly one kind below.
//   • Subpackage sentinels wrap these kinds, so callers may branch either on the
//     precise sentinel (category.ErrLengthMismatch) or on the kind
//     (hyperprep.ErrLengthMismatch) with errors.Is.
//   • All kinds are caller errors: nothing is retried, coerced or partially applied.

package hyperprep

import "errors"

var (
	// ErrShapeMismatch reports series with incompatible column counts where a
	// shared frame is required (stacking, centering, scaling).
	ErrShapeMismatch = errors.New("hyperprep: shape mismatch")

	// ErrLengthMismatch reports a label/row count mismatch, or a broadcast
	// sequence whose length is neither 1 nor the series count.
	ErrLengthMismatch = errors.New("hyperprep: length mismatch")

	// ErrDegenerateInput reports inputs too small or too degenerate to transform
	// (empty datasets, fewer than two interpolation samples, no finite values).
	ErrDegenerateInput = errors.New("hyperprep: degenerate input")

	// ErrConfiguration reports an invalid option value or an option combination
	// the data cannot satisfy (ndims, explore, wrong option type).
	ErrConfiguration = errors.New("hyperprep: configuration error")
)
