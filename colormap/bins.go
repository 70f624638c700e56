// SPDX-License-Identifier: MIT
// Package: hyperprep/colormap
//
// bins.go - equal-width binning.
//
// Contract:
//   • Output has one bin per input value, in input (pre-flatten) order.
//   • Every output lies in [0, res-1]; min(values) always lands in bin 0.
//   • Validation happens before any allocation of the result.
//
// Complexity: O(n log res) time (binary search per value), O(n + res) memory.

package colormap

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// DefaultRes is the default number of bins.
const DefaultRes = 100

const (
	opEdges    = "Edges"
	opVals2Bin = "Vals2Bins"
)

// Edges returns the res+1 bin edges for vals: evenly spaced from min(vals) to
// max(vals)+1.
//
// Errors:
//   - ErrBadResolution if res < 1.
//   - ErrNoValues if vals is empty.
//   - ErrNonFinite if any value is NaN or ±Inf.
//   - ErrConstantValues if min(vals) == max(vals).
func Edges(vals []float64, res int) ([]float64, error) {
	if res < 1 {
		return nil, colormapErrorf(opEdges, ErrBadResolution, "res=%d", res)
	}
	if len(vals) == 0 {
		return nil, colormapErrorf(opEdges, ErrNoValues, "")
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, colormapErrorf(opEdges, ErrNonFinite, "index %d", i)
		}
	}

	lo, hi := stats.Bounds(vals)
	if lo == hi {
		return nil, colormapErrorf(opEdges, ErrConstantValues, "value=%g", lo)
	}

	return vec.Linspace(lo, hi+1, res+1), nil
}

// Vals2Bins maps each value to its bin index in [0, res-1].
func Vals2Bins(vals []float64, res int) ([]int, error) {
	edges, err := Edges(vals, res)
	if err != nil {
		return nil, colormapErrorf(opVals2Bin, err, "")
	}

	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = digitize(v, edges)
	}

	return out, nil
}

// Vals2BinsNested flattens nested values (outer order, then inner order) and
// bins them together, so all groups share one value range.
func Vals2BinsNested(vals [][]float64, res int) ([]int, error) {
	return Vals2Bins(Flatten(vals), res)
}

// Flatten concatenates nested values in order.
func Flatten(nested [][]float64) []float64 {
	n := 0
	for _, s := range nested {
		n += len(s)
	}
	out := make([]float64, 0, n)
	for _, s := range nested {
		out = append(out, s...)
	}

	return out
}

// digitize returns k such that edges[k] <= v < edges[k+1], clamped into
// [0, len(edges)-2].
func digitize(v float64, edges []float64) int {
	// At huge magnitudes neighbouring edges may round to the same float.
	if v <= edges[0] {
		return 0
	}
	// Number of edges <= v, minus one, is the interval index.
	k := sort.Search(len(edges), func(i int) bool { return edges[i] > v }) - 1
	if k < 0 {
		return 0
	}
	if top := len(edges) - 2; k > top {
		return top
	}

	return k
}
