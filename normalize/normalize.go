// SPDX-License-Identifier: MIT
// Package: hyperprep/normalize
//
// normalize.go - global centering and scaling.
//
// Determinism & Performance:
//   - Statistics come from one stacked copy; per-series outputs are fresh Dense.
//   - Time O(N·D) for N stacked samples of dimension D; memory O(N·D).

package normalize

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hyperprep/series"
)

const (
	opCenter      = "Center"
	opScale       = "Scale"
	opCenterScale = "CenterScale"
)

// Center subtracts the mean vector of the stacked dataset from every sample of
// every series.
//
// Returns:
//   - the centered series (same order and shapes as xs),
//   - the subtracted column means (len = D), handy for un-centering later.
//
// Errors:
//   - series.ErrShapeMismatch if column counts differ.
//   - series.ErrEmpty / series.ErrNilSeries for empty or nil series.
func Center(xs []*mat.Dense) ([]*mat.Dense, []float64, error) {
	stacked, err := series.Stack(xs)
	if err != nil {
		return nil, nil, normalizeErrorf(opCenter, err)
	}

	rows, cols := stacked.Dims()
	means := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, stacked)
		means[j] = stat.Mean(col, nil)
	}

	out := make([]*mat.Dense, len(xs))
	for i, x := range xs {
		c := mat.DenseCopyOf(x)
		c.Apply(func(_, j int, v float64) float64 { return v - means[j] }, c)
		out[i] = c
	}

	return out, means, nil
}

// Scale maps every value v to 2·(v−m1)/m2 − 1, where m1 is the global minimum
// of the stacked dataset and m2 = max(stacked − m1). The result lies in [-1, 1].
// The scaling is global over all columns, not per dimension.
//
// Errors:
//   - ErrConstantData when m2 == 0.
//   - series.ErrShapeMismatch / ErrEmpty / ErrNilSeries from stacking.
func Scale(xs []*mat.Dense) ([]*mat.Dense, error) {
	stacked, err := series.Stack(xs)
	if err != nil {
		return nil, normalizeErrorf(opScale, err)
	}

	m1 := mat.Min(stacked)
	m2 := mat.Max(stacked) - m1
	if m2 == 0 {
		return nil, normalizeErrorf(opScale, ErrConstantData)
	}

	out := make([]*mat.Dense, len(xs))
	for i, x := range xs {
		c := mat.DenseCopyOf(x)
		c.Apply(func(_, _ int, v float64) float64 { return 2*((v-m1)/m2) - 1 }, c)
		out[i] = c
	}

	return out, nil
}

// CenterScale runs Center followed by Scale; this is what normalize=true does.
func CenterScale(xs []*mat.Dense) ([]*mat.Dense, error) {
	centered, _, err := Center(xs)
	if err != nil {
		return nil, normalizeErrorf(opCenterScale, err)
	}
	scaled, err := Scale(centered)
	if err != nil {
		return nil, normalizeErrorf(opCenterScale, err)
	}

	return scaled, nil
}
