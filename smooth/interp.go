// SPDX-License-Identifier: MIT
// Package: hyperprep/smooth
//
// interp.go - monotone cubic upsampling of vectors, series and series lists.
//
// Contract:
//   • Inputs are never mutated; outputs are fresh.
//   • InterpArrayList is all-or-nothing: if any series fails, no output is
//     returned. Per-series work is independent and runs concurrently; output
//     index i always corresponds to input index i.
//
// Complexity: O(n + k·n) per column (fit + evaluation, binary segment search
// adds a log n factor per evaluation).

package smooth

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// DefaultFactor is the default upsampling factor.
const DefaultFactor = 10

const (
	opInterpArray     = "InterpArray"
	opInterpSeries    = "InterpSeries"
	opInterpArrayList = "InterpArrayList"
)

// OutputLen returns the number of points InterpArray produces for n samples
// at factor k.
func OutputLen(n, k int) int {
	if n < 2 || k < 1 {
		return 0
	}

	return k * (n - 1)
}

// InterpArray upsamples arr by factor k.
//
// Errors:
//   - ErrBadFactor if k < 1.
//   - ErrTooFewSamples if len(arr) < 2.
//   - ErrNonFinite if any sample is NaN or ±Inf.
func InterpArray(arr []float64, k int) ([]float64, error) {
	if err := validate(arr, k); err != nil {
		return nil, smoothErrorf(opInterpArray, err, "")
	}

	return evaluate(arr, k)
}

// InterpSeries upsamples every column of an n×d series independently,
// returning a k·(n−1)×d matrix.
func InterpSeries(m mat.Matrix, k int) (*mat.Dense, error) {
	if m == nil {
		return nil, smoothErrorf(opInterpSeries, ErrNilSeries, "")
	}
	if e, ok := m.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return nil, smoothErrorf(opInterpSeries, ErrTooFewSamples, "empty series")
	}
	rows, cols := m.Dims()
	if k < 1 {
		return nil, smoothErrorf(opInterpSeries, ErrBadFactor, "k=%d", k)
	}
	if rows < 2 {
		return nil, smoothErrorf(opInterpSeries, ErrTooFewSamples, "rows=%d", rows)
	}

	out := mat.NewDense(OutputLen(rows, k), cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		if err := validate(col, k); err != nil {
			return nil, smoothErrorf(opInterpSeries, err, "column %d", j)
		}
		yy, err := evaluate(col, k)
		if err != nil {
			return nil, smoothErrorf(opInterpSeries, err, "column %d", j)
		}
		out.SetCol(j, yy)
	}

	return out, nil
}

// InterpArrayList upsamples every series of xs with InterpSeries, using up to
// GOMAXPROCS goroutines.
func InterpArrayList(xs []*mat.Dense, k int) ([]*mat.Dense, error) {
	for i, x := range xs {
		if x == nil {
			return nil, smoothErrorf(opInterpArrayList, ErrNilSeries, "index %d", i)
		}
	}

	out := make([]*mat.Dense, len(xs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, x := range xs {
		g.Go(func() error {
			z, err := InterpSeries(x, k)
			if err != nil {
				return smoothErrorf(opInterpArrayList, err, "series %d", i)
			}
			out[i] = z
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validate checks the shared preconditions of a single sequence.
func validate(arr []float64, k int) error {
	if k < 1 {
		return smoothErrorf("validate", ErrBadFactor, "k=%d", k)
	}
	if len(arr) < 2 {
		return smoothErrorf("validate", ErrTooFewSamples, "len=%d", len(arr))
	}
	for i, v := range arr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return smoothErrorf("validate", ErrNonFinite, "index %d", i)
		}
	}

	return nil
}

// evaluate fits the Fritsch–Butland interpolant through (i, arr[i]) and
// samples it at i/k. Positions are computed by division, not accumulation,
// so the last position never drifts past n−1.
func evaluate(arr []float64, k int) ([]float64, error) {
	xs := make([]float64, len(arr))
	for i := range xs {
		xs[i] = float64(i)
	}

	var fb interp.FritschButland
	if err := fb.Fit(xs, arr); err != nil {
		return nil, err
	}

	out := make([]float64, OutputLen(len(arr), k))
	step := float64(k)
	for i := range out {
		out[i] = fb.Predict(float64(i) / step)
	}

	return out, nil
}
