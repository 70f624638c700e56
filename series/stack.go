// SPDX-License-Identifier: MIT
// Package: hyperprep/series
//
// stack.go - StackedMatrix construction and shape checks.
//
// Contract:
//   • Stack concatenates rows in series order, then sample order.
//   • The stacked matrix is derived scratch for global statistics; it owns its
//     buffer and never aliases the inputs.
//   • Split is the inverse: it restores series boundaries from row counts.

package series

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opDims  = "Dims"
	opStack = "Stack"
	opSplit = "Split"
)

// Dims validates xs as a dataset sharing one column count and returns the
// total row count and that column count.
//
// Errors:
//   - ErrEmpty if xs has no series.
//   - ErrNilSeries if any element is nil.
//   - ErrEmpty if any series has no samples.
//   - ErrShapeMismatch if column counts differ (the first offending index is reported).
//
// Complexity: O(len(xs)).
func Dims(xs []*mat.Dense) (rows, cols int, err error) {
	if len(xs) == 0 {
		return 0, 0, seriesErrorf(opDims, ErrEmpty, "")
	}
	for i, x := range xs {
		if x == nil {
			return 0, 0, seriesErrorf(opDims, ErrNilSeries, "index %d", i)
		}
		if x.IsEmpty() {
			return 0, 0, seriesErrorf(opDims, ErrEmpty, "series %d has no samples", i)
		}
		r, c := x.Dims()
		if i == 0 {
			cols = c
		} else if c != cols {
			return 0, 0, seriesErrorf(opDims, ErrShapeMismatch, "series %d has %d columns, series 0 has %d", i, c, cols)
		}
		rows += r
	}

	return rows, cols, nil
}

// Stack returns the row-wise concatenation of xs.
//
// Errors: see Dims.
//
// Complexity: O(total rows × cols) time and memory.
func Stack(xs []*mat.Dense) (*mat.Dense, error) {
	rows, cols, err := Dims(xs)
	if err != nil {
		return nil, seriesErrorf(opStack, err, "")
	}
	out := mat.NewDense(rows, cols, nil)
	offset := 0
	for _, x := range xs {
		r, _ := x.Dims()
		out.Slice(offset, offset+r, 0, cols).(*mat.Dense).Copy(x)
		offset += r
	}

	return out, nil
}

// Split cuts stacked back into len(counts) fresh matrices, the i-th holding
// counts[i] consecutive rows.
//
// Errors:
//   - ErrShapeMismatch if the counts do not sum to the stacked row count.
func Split(stacked mat.Matrix, counts []int) ([]*mat.Dense, error) {
	rows, cols := stacked.Dims()
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != rows {
		return nil, seriesErrorf(opSplit, ErrShapeMismatch, "counts sum to %d, stacked has %d rows", total, rows)
	}

	out := make([]*mat.Dense, len(counts))
	offset := 0
	for i, n := range counts {
		out[i] = copyRows(stacked, offset, offset+n, cols)
		offset += n
	}

	return out, nil
}

// RowCounts returns the sample count of every series, in order.
func RowCounts(xs []*mat.Dense) []int {
	counts := make([]int, len(xs))
	for i, x := range xs {
		counts[i], _ = x.Dims()
	}

	return counts
}

// Clone deep-copies every series.
func Clone(xs []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(xs))
	for i, x := range xs {
		out[i] = mat.DenseCopyOf(x)
	}

	return out
}

// copyRows copies rows [from,to) of m into a new matrix. An empty range yields
// the zero-value Dense because gonum refuses zero-sized allocations.
func copyRows(m mat.Matrix, from, to, cols int) *mat.Dense {
	if to == from || cols == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(to-from, cols, nil)
	for i := from; i < to; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i-from, j, m.At(i, j))
		}
	}

	return out
}
