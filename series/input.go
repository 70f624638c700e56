// SPDX-License-Identifier: MIT
// Package: hyperprep/series
//
// input.go - the tagged input variant resolved once at the boundary.
//
// Contract:
//   • An Input is exactly one of: single matrix, collection of matrices,
//     single frame, collection of frames. The zero Input is none of them and
//     resolves to ErrUnsupportedInput.
//   • Resolve produces the canonical []*mat.Dense: frames pass through
//     Frame.Matrix, single inputs become one-element datasets, and
//     one-dimensional vectors become one-column series.
//   • Inputs are copied during Resolve; later mutation of the caller's data
//     does not leak into a resolved dataset.

package series

import (
	"gonum.org/v1/gonum/mat"
)

const opResolve = "Resolve"

// Kind tags the variant held by an Input.
type Kind int

const (
	// KindInvalid is the zero Kind; it never resolves.
	KindInvalid Kind = iota
	// KindMatrix is a single numeric matrix (one series).
	KindMatrix
	// KindMatrices is an ordered collection of numeric matrices.
	KindMatrices
	// KindFrame is a single tabular frame (one series).
	KindFrame
	// KindFrames is an ordered collection of tabular frames.
	KindFrames
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindMatrices:
		return "matrices"
	case KindFrame:
		return "frame"
	case KindFrames:
		return "frames"
	default:
		return "invalid"
	}
}

// Input is the boundary representation of caller data.
type Input struct {
	kind     Kind
	matrices []mat.Matrix
	frames   []*Frame
}

// FromMatrix wraps a single samples×dims matrix.
func FromMatrix(m mat.Matrix) Input {
	return Input{kind: KindMatrix, matrices: []mat.Matrix{m}}
}

// FromMatrices wraps an ordered collection of samples×dims matrices.
func FromMatrices(ms ...mat.Matrix) Input {
	return Input{kind: KindMatrices, matrices: ms}
}

// FromVector wraps a one-dimensional sample sequence as a single one-column
// series. An empty vector resolves to ErrEmpty.
func FromVector(v []float64) Input {
	if len(v) == 0 {
		return Input{kind: KindMatrix, matrices: []mat.Matrix{&mat.Dense{}}}
	}

	return FromMatrix(mat.NewVecDense(len(v), append([]float64(nil), v...)))
}

// FromVectors wraps several one-dimensional sequences, one series each.
func FromVectors(vs ...[]float64) Input {
	ms := make([]mat.Matrix, len(vs))
	for i, v := range vs {
		if len(v) == 0 {
			ms[i] = &mat.Dense{}
			continue
		}
		ms[i] = mat.NewVecDense(len(v), append([]float64(nil), v...))
	}

	return Input{kind: KindMatrices, matrices: ms}
}

// FromFrame wraps a single tabular frame.
func FromFrame(f *Frame) Input {
	return Input{kind: KindFrame, frames: []*Frame{f}}
}

// FromFrames wraps an ordered collection of tabular frames.
func FromFrames(fs ...*Frame) Input {
	return Input{kind: KindFrames, frames: fs}
}

// Kind reports the held variant.
func (in Input) Kind() Kind { return in.kind }

// Len reports how many series the input will resolve to.
func (in Input) Len() int {
	switch in.kind {
	case KindMatrix, KindMatrices:
		return len(in.matrices)
	case KindFrame, KindFrames:
		return len(in.frames)
	default:
		return 0
	}
}

// Resolve converts the input into a dataset of fresh *mat.Dense series.
//
// Errors:
//   - ErrUnsupportedInput for the zero Input.
//   - ErrEmpty for an empty collection or an empty series.
//   - ErrNilSeries for a nil element.
//   - ErrRaggedFrame from frame conversion.
func (in Input) Resolve() ([]*mat.Dense, error) {
	if in.kind == KindInvalid {
		return nil, seriesErrorf(opResolve, ErrUnsupportedInput, "")
	}
	if in.Len() == 0 {
		return nil, seriesErrorf(opResolve, ErrEmpty, "%s input has no series", in.kind)
	}

	out := make([]*mat.Dense, in.Len())
	switch in.kind {
	case KindMatrix, KindMatrices:
		for i, m := range in.matrices {
			d, err := denseOf(m, i)
			if err != nil {
				return nil, seriesErrorf(opResolve, err, "")
			}
			out[i] = d
		}
	case KindFrame, KindFrames:
		for i, f := range in.frames {
			if f == nil {
				return nil, seriesErrorf(opResolve, ErrNilSeries, "frame %d", i)
			}
			d, err := f.Matrix()
			if err != nil {
				return nil, seriesErrorf(opResolve, err, "frame %d", i)
			}
			out[i] = d
		}
	}

	return out, nil
}

// denseOf copies m into a fresh Dense. A *mat.VecDense becomes an n×1 column,
// which is how one-dimensional inputs are lifted to samples×dims form.
func denseOf(m mat.Matrix, i int) (*mat.Dense, error) {
	if m == nil {
		return nil, seriesErrorf(opResolve, ErrNilSeries, "index %d", i)
	}
	if e, ok := m.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return nil, seriesErrorf(opResolve, ErrEmpty, "series %d has no samples", i)
	}

	return mat.DenseCopyOf(m), nil
}
