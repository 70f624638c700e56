// SPDX-License-Identifier: MIT

package normalize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep"
	"github.com/katalvlaran/hyperprep/normalize"
	"github.com/katalvlaran/hyperprep/series"
	"github.com/katalvlaran/hyperprep/synth"
)

const eps = 1e-12

func TestCenter_ZeroGlobalMean(t *testing.T) {
	xs := []*mat.Dense{
		mat.NewDense(2, 3, []float64{1, 2, 3, 10, 20, 30}),
		mat.NewDense(1, 3, []float64{4, 5, 6}),
	}

	out, means, err := normalize.Center(xs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 9, 13}, means, eps)

	stacked, err := series.Stack(out)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += stacked.At(i, j)
		}
		assert.InDelta(t, 0, sum, eps, "column %d", j)
	}

	// Shapes preserved, inputs untouched.
	r, c := out[0].Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, 1.0, xs[0].At(0, 0))
}

func TestCenter_ShapeMismatch(t *testing.T) {
	xs := []*mat.Dense{mat.NewDense(1, 2, nil), mat.NewDense(1, 3, nil)}
	_, _, err := normalize.Center(xs)
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
	assert.ErrorIs(t, err, hyperprep.ErrShapeMismatch)
}

func TestScale_Bounds(t *testing.T) {
	xs := []*mat.Dense{
		mat.NewDense(2, 2, []float64{-3, 0, 2, 7}),
		mat.NewDense(1, 2, []float64{1, 1}),
	}
	out, err := normalize.Scale(xs)
	require.NoError(t, err)

	// min -3 → -1, max 7 → 1, 2 → 2*(5/10)-1 = 0.
	assert.Equal(t, -1.0, out[0].At(0, 0))
	assert.Equal(t, 1.0, out[0].At(1, 1))
	assert.InDelta(t, 0.0, out[0].At(1, 0), eps)
	for _, o := range out {
		assert.GreaterOrEqual(t, mat.Min(o), -1.0)
		assert.LessOrEqual(t, mat.Max(o), 1.0)
	}
}

func TestScale_RandomBounds(t *testing.T) {
	xs := synth.Dataset(4, 50, 3, 7)
	out, err := normalize.Scale(xs)
	require.NoError(t, err)

	stacked, err := series.Stack(out)
	require.NoError(t, err)
	assert.Equal(t, -1.0, mat.Min(stacked), "global minimum must map to exactly -1")
	assert.InDelta(t, 1.0, mat.Max(stacked), eps)
}

func TestScale_ConstantData(t *testing.T) {
	xs := []*mat.Dense{mat.NewDense(2, 2, []float64{3, 3, 3, 3})}
	out, err := normalize.Scale(xs)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, normalize.ErrConstantData)
	assert.ErrorIs(t, err, hyperprep.ErrDegenerateInput)
}

func TestCenterScale(t *testing.T) {
	xs := synth.Dataset(3, 20, 2, 1)
	out, err := normalize.CenterScale(xs)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, o := range out {
		o.Apply(func(_, _ int, v float64) float64 {
			assert.False(t, math.IsNaN(v))
			assert.True(t, v >= -1 && v <= 1+eps)
			return v
		}, o)
	}

	_, err = normalize.CenterScale(nil)
	assert.ErrorIs(t, err, series.ErrEmpty)
}
