// SPDX-License-Identifier: MIT

package category_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep"
	"github.com/katalvlaran/hyperprep/category"
	"github.com/katalvlaran/hyperprep/series"
	"github.com/katalvlaran/hyperprep/synth"
)

func TestGroupByCategory_FirstOccurrence(t *testing.T) {
	got := category.GroupByCategory([]string{"z", "a", "z", "m", "a"})
	assert.Equal(t, []int{0, 1, 0, 2, 1}, got)
	assert.Equal(t, []string{"z", "a", "m"}, category.Categories([]string{"z", "a", "z", "m", "a"}))
}

func TestGroupByCategory_Empty(t *testing.T) {
	got := category.GroupByCategory([]int{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupByCategory_Deterministic(t *testing.T) {
	labels := synth.Labels(500, []string{"w", "x", "y", "z"}, 11)
	first := category.GroupByCategory(labels)
	second := category.GroupByCategory(labels)
	assert.Equal(t, first, second)

	// Distinct outputs are exactly {0..K-1}.
	seen := map[int]bool{}
	for _, g := range first {
		seen[g] = true
	}
	k := len(category.Categories(labels))
	var keys []int
	for g := range seen {
		keys = append(keys, g)
	}
	sort.Ints(keys)
	want := make([]int, k)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, keys)
}

func TestGroupByCategory_OpaqueLabels(t *testing.T) {
	type point struct{ x, y int }
	got := category.GroupByCategory([]any{point{1, 2}, "s", 3, point{1, 2}, 3})
	assert.Equal(t, []int{0, 1, 2, 0, 2}, got)
}

func TestGroupByCategory_NaNLabelsShareOneCategory(t *testing.T) {
	nan := math.NaN()
	labels := []float64{nan, 1, nan, 2, nan}

	assert.Equal(t, []int{0, 1, 0, 2, 0}, category.GroupByCategory(labels))
	levels := category.Categories(labels)
	require.Len(t, levels, 3)
	assert.True(t, math.IsNaN(levels[0]))

	boxed := []any{1.0, nan, "x", nan}
	assert.Equal(t, []int{0, 1, 2, 1}, category.GroupByCategory(boxed))
	assert.Len(t, category.Categories(boxed), 3)
}

func TestReshapeData_NaNLabels(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{10, 20, 30})
	out, err := category.ReshapeData(m, []float64{math.NaN(), 1, math.NaN()})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []float64{10, 30}, out[0].RawMatrix().Data)
	assert.Equal(t, []float64{20}, out[1].RawMatrix().Data)
}

func TestGroupByCategoryNested(t *testing.T) {
	got := category.GroupByCategoryNested([][]int{{5, 6}, {6, 7}, {}})
	assert.Equal(t, []int{0, 1, 1, 2}, got)
}

func TestReshapeData_Partition(t *testing.T) {
	stacked := mat.NewDense(5, 2, []float64{
		0, 0,
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})
	labels := []string{"b", "a", "b", "c", "a"}

	groups, err := category.ReshapeData(stacked, labels)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{0, 0, 2, 2}), groups[0]))
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 1, 4, 4}), groups[1]))
	assert.True(t, mat.Equal(mat.NewDense(1, 2, []float64{3, 3}), groups[2]))
}

func TestReshapeData_MultisetEqualsInput(t *testing.T) {
	xs := synth.Dataset(3, 40, 2, 5)
	labels := synth.Labels(120, []string{"p", "q", "r", "s"}, 5)

	groups, err := category.ReshapeSeries(xs, labels)
	require.NoError(t, err)

	stacked, err := series.Stack(xs)
	require.NoError(t, err)
	back, err := series.Stack(groups)
	require.NoError(t, err)

	rowsOf := func(m *mat.Dense) [][2]float64 {
		r, _ := m.Dims()
		out := make([][2]float64, r)
		for i := range out {
			out[i] = [2]float64{m.At(i, 0), m.At(i, 1)}
		}
		sort.Slice(out, func(a, b int) bool {
			if out[a][0] != out[b][0] {
				return out[a][0] < out[b][0]
			}
			return out[a][1] < out[b][1]
		})
		return out
	}
	assert.Equal(t, rowsOf(stacked), rowsOf(back))
}

func TestReshapeData_Errors(t *testing.T) {
	stacked := mat.NewDense(2, 1, []float64{1, 2})

	_, err := category.ReshapeData(stacked, []int{0})
	assert.ErrorIs(t, err, category.ErrLengthMismatch)
	assert.ErrorIs(t, err, hyperprep.ErrLengthMismatch)

	_, err = category.ReshapeData(nil, []int{})
	assert.ErrorIs(t, err, category.ErrEmptyInput)

	_, err = category.ReshapeData(&mat.Dense{}, []int{})
	assert.ErrorIs(t, err, category.ErrEmptyInput)

	_, err = category.ReshapeSeries([]*mat.Dense{mat.NewDense(1, 1, nil), mat.NewDense(1, 2, nil)}, []int{0, 0})
	assert.ErrorIs(t, err, hyperprep.ErrShapeMismatch)
}
