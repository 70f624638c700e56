// SPDX-License-Identifier: MIT
// Package: hyperprep/category
//
// category.go - first-occurrence indexing and per-category regrouping.
//
// Invariants:
//   • GroupByCategory output has the same length and order as its input, and
//     its distinct values are exactly {0..K-1}.
//   • ReshapeData partitions rows: every input row lands in exactly one output
//     matrix, rows keep their original relative order within a category, and
//     output matrices follow category index order.
//
// Complexity: O(n) expected time for n labels (hash index), O(n·D) for reshape.

package category

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/series"
)

const (
	opReshapeData   = "ReshapeData"
	opReshapeSeries = "ReshapeSeries"
)

// index maps each distinct label to its first-occurrence position.
// Labels unequal to themselves (NaN, or an interface holding NaN) share a
// single category, since a map can never find them again.
type index[L comparable] struct {
	pos    map[L]int
	nanPos int
	levels []L
}

func newIndex[L comparable](labels []L) *index[L] {
	ix := &index[L]{pos: make(map[L]int), nanPos: -1}
	for _, l := range labels {
		if l != l {
			if ix.nanPos < 0 {
				ix.nanPos = len(ix.levels)
				ix.levels = append(ix.levels, l)
			}
			continue
		}
		if _, ok := ix.pos[l]; !ok {
			ix.pos[l] = len(ix.levels)
			ix.levels = append(ix.levels, l)
		}
	}

	return ix
}

// Categories returns the distinct labels in first-occurrence order; the label
// at position k is category k.
func Categories[L comparable](labels []L) []L {
	return newIndex(labels).levels
}

// GroupByCategory returns the category index of every label, in input order.
// An empty input yields an empty (non-nil) result.
//
// Labels must be comparable at runtime as well: an interface-typed label
// holding a slice or map panics on hashing, exactly as a map key would.
func GroupByCategory[L comparable](labels []L) []int {
	return newIndex(labels).assign(labels)
}

// assign maps labels to their indices.
func (ix *index[L]) assign(labels []L) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		if l != l {
			out[i] = ix.nanPos
			continue
		}
		out[i] = ix.pos[l]
	}

	return out
}

// GroupByCategoryNested flattens per-series label sequences by concatenation
// (series order, then sample order) and indexes the flattened sequence.
func GroupByCategoryNested[L comparable](labels [][]L) []int {
	return GroupByCategory(Flatten(labels))
}

// Flatten concatenates nested label sequences in order.
func Flatten[L any](nested [][]L) []L {
	n := 0
	for _, s := range nested {
		n += len(s)
	}
	out := make([]L, 0, n)
	for _, s := range nested {
		out = append(out, s...)
	}

	return out
}

// ReshapeData splits the rows of stacked into one matrix per category.
// Row i belongs to the category of labels[i].
//
// Errors:
//   - ErrEmptyInput if stacked is nil or has no rows.
//   - ErrLengthMismatch if len(labels) != rows(stacked).
func ReshapeData[L comparable](stacked mat.Matrix, labels []L) ([]*mat.Dense, error) {
	if stacked == nil {
		return nil, categoryErrorf(opReshapeData, ErrEmptyInput, "nil matrix")
	}
	if e, ok := stacked.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return nil, categoryErrorf(opReshapeData, ErrEmptyInput, "")
	}
	rows, cols := stacked.Dims()
	if len(labels) != rows {
		return nil, categoryErrorf(opReshapeData, ErrLengthMismatch, "labels=%d rows=%d", len(labels), rows)
	}

	ix := newIndex(labels)
	groups := ix.assign(labels)

	// Count first, so each category matrix is allocated exactly once.
	counts := make([]int, len(ix.levels))
	for _, g := range groups {
		counts[g]++
	}
	out := make([]*mat.Dense, len(counts))
	for k, n := range counts {
		out[k] = mat.NewDense(n, cols, nil)
	}

	fill := make([]int, len(counts))
	row := make([]float64, cols)
	for i, g := range groups {
		mat.Row(row, i, stacked)
		out[g].SetRow(fill[g], row)
		fill[g]++
	}

	return out, nil
}

// ReshapeSeries stacks a multi-series dataset and regroups its rows by the
// per-sample labels (one label per stacked row).
//
// Errors: series stacking errors, then ReshapeData errors.
func ReshapeSeries[L comparable](xs []*mat.Dense, labels []L) ([]*mat.Dense, error) {
	stacked, err := series.Stack(xs)
	if err != nil {
		return nil, categoryErrorf(opReshapeSeries, err, "")
	}
	out, err := ReshapeData(stacked, labels)
	if err != nil {
		return nil, categoryErrorf(opReshapeSeries, err, "")
	}

	return out, nil
}
