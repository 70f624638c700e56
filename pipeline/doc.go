// SPDX-License-Identifier: MIT

// Package pipeline runs the full preparation flow over one input:
//
//	input → config.Resolve → normalize → category regroup → hue colors
//	      → smooth (animate) → per-series style options
//
// Prepare is all or nothing. Each stage validates before it transforms and the
// first failure aborts the run with a nil Result; the returned error carries
// the stage name and wraps the stage's own sentinel, so both
//
//	errors.Is(err, hyperprep.ErrLengthMismatch)
//	errors.Is(err, category.ErrLengthMismatch)
//
// hold for a label count mismatch.
//
// The package is silent unless a logger is supplied with WithLogger; stage
// progress is reported at V(1).
package pipeline
