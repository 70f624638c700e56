// SPDX-License-Identifier: MIT
// Package: hyperprep/series
//
// pad.go - rendering helpers that reshape whole datasets.

package series

import (
	"gonum.org/v1/gonum/mat"
)

const opPatchLines = "PatchLines"

// Multipad zero-pads every series on the right to the widest column count.
// When all widths already agree, the result is a plain deep copy.
//
// Errors:
//   - ErrEmpty / ErrNilSeries for empty or nil members.
func Multipad(xs []*mat.Dense) ([]*mat.Dense, error) {
	if len(xs) == 0 {
		return nil, seriesErrorf("Multipad", ErrEmpty, "")
	}
	width := 0
	for i, x := range xs {
		if x == nil {
			return nil, seriesErrorf("Multipad", ErrNilSeries, "index %d", i)
		}
		if x.IsEmpty() {
			return nil, seriesErrorf("Multipad", ErrEmpty, "series %d has no samples", i)
		}
		if _, c := x.Dims(); c > width {
			width = c
		}
	}

	out := make([]*mat.Dense, len(xs))
	for i, x := range xs {
		r, c := x.Dims()
		if c == width {
			out[i] = mat.DenseCopyOf(x)
			continue
		}
		padded := mat.NewDense(r, width, nil)
		padded.Slice(0, r, 0, c).(*mat.Dense).Copy(x)
		out[i] = padded
	}

	return out, nil
}

// PatchLines appends the first sample of series i+1 to series i, so adjacent
// groups render as one connected line. The last series is copied unchanged.
//
// Errors:
//   - ErrShapeMismatch if series disagree on dimensionality.
func PatchLines(xs []*mat.Dense) ([]*mat.Dense, error) {
	_, cols, err := Dims(xs)
	if err != nil {
		return nil, seriesErrorf(opPatchLines, err, "")
	}

	out := make([]*mat.Dense, len(xs))
	last := len(xs) - 1
	for i, x := range xs {
		if i == last {
			out[i] = mat.DenseCopyOf(x)
			break
		}
		r, _ := x.Dims()
		patched := mat.NewDense(r+1, cols, nil)
		patched.Slice(0, r, 0, cols).(*mat.Dense).Copy(x)
		patched.SetRow(r, mat.Row(nil, 0, xs[i+1]))
		out[i] = patched
	}

	return out, nil
}
