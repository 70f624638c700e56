// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep"
	"github.com/katalvlaran/hyperprep/colormap"
	"github.com/katalvlaran/hyperprep/config"
	"github.com/katalvlaran/hyperprep/pipeline"
	"github.com/katalvlaran/hyperprep/series"
	"github.com/katalvlaran/hyperprep/smooth"
	"github.com/katalvlaran/hyperprep/synth"
)

func twoByTwo() series.Input {
	return series.FromMatrices(
		mat.NewDense(2, 2, []float64{0, 0, 1, 1}),
		mat.NewDense(2, 2, []float64{2, 2, 3, 3}),
	)
}

func TestPrepare_Defaults(t *testing.T) {
	xs := synth.Dataset(3, 10, 4, 1)
	in := make([]mat.Matrix, len(xs))
	for i, x := range xs {
		in[i] = x
	}

	res, err := pipeline.Prepare(series.FromMatrices(in...), nil)
	require.NoError(t, err)
	require.Len(t, res.Series, 3)
	for i := range xs {
		assert.True(t, mat.Equal(xs[i], res.Series[i]))
		assert.NotSame(t, xs[i], res.Series[i])
	}
	assert.Equal(t, 3, res.Config[config.KeyNDims])
	assert.Equal(t, []map[string]any{{}, {}, {}}, res.Style)
	assert.Nil(t, res.Categories)
	assert.Nil(t, res.Colors)
}

func TestPrepare_Normalize(t *testing.T) {
	xs := synth.Dataset(2, 20, 3, 9)
	res, err := pipeline.Prepare(series.FromMatrices(xs[0], xs[1]), config.Set{"normalize": true})
	require.NoError(t, err)

	stacked, err := series.Stack(res.Series)
	require.NoError(t, err)
	assert.InDelta(t, -1, mat.Min(stacked), 1e-12)
	assert.LessOrEqual(t, mat.Max(stacked), 1+1e-12)
}

func TestPrepare_Labels(t *testing.T) {
	cases := []struct {
		name   string
		labels any
		cats   []int
		rows   []int
	}{
		{"per sample", []string{"a", "b", "a", "b"}, []int{0, 1, 0, 1}, []int{2, 2}},
		{"per series", []string{"x", "y"}, []int{0, 0, 1, 1}, []int{2, 2}},
		{"nested", []any{[]string{"a", "b"}, []string{"b", "b"}}, []int{0, 1, 1, 1}, []int{1, 3}},
		{"ints", []int{7, 7, 7, 9}, []int{0, 0, 0, 1}, []int{3, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pipeline.Prepare(twoByTwo(), config.Set{"labels": tc.labels})
			require.NoError(t, err)
			assert.Equal(t, tc.cats, res.Categories)
			assert.Equal(t, tc.rows, series.RowCounts(res.Series))
		})
	}
}

func TestPrepare_LabelsRegroupRows(t *testing.T) {
	res, err := pipeline.Prepare(twoByTwo(), config.Set{"labels": []string{"odd", "even", "odd", "even"}})
	require.NoError(t, err)
	require.Len(t, res.Series, 2)
	assert.Equal(t, []float64{0, 0, 2, 2}, res.Series[0].RawMatrix().Data)
	assert.Equal(t, []float64{1, 1, 3, 3}, res.Series[1].RawMatrix().Data)
}

func TestPrepare_NaNLabels(t *testing.T) {
	nan := math.NaN()
	res, err := pipeline.Prepare(twoByTwo(), config.Set{"labels": []any{nan, 1.0, nan, 1.0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, res.Categories)
	assert.Equal(t, []int{2, 2}, series.RowCounts(res.Series))
}

func TestPrepare_LabelErrors(t *testing.T) {
	res, err := pipeline.Prepare(twoByTwo(), config.Set{"labels": []string{"a", "b", "c"}})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, pipeline.ErrLabelLength)
	assert.ErrorIs(t, err, hyperprep.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "labels")

	_, err = pipeline.Prepare(twoByTwo(), config.Set{"labels": []any{[]string{"a"}, []string{"b", "b"}}})
	assert.ErrorIs(t, err, pipeline.ErrLabelLength)

	_, err = pipeline.Prepare(twoByTwo(), config.Set{"labels": []any{[]int{1}, "a"}})
	assert.ErrorIs(t, err, pipeline.ErrLabelType)
}

func TestPrepare_Hue(t *testing.T) {
	in := series.FromMatrix(mat.NewDense(3, 2, []float64{0, 0, 1, 1, 2, 2}))
	res, err := pipeline.Prepare(in, config.Set{"hue": []float64{0, 5, 10}, "res": 10, "palette": "husl"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 9}, res.Bins)
	require.Len(t, res.Colors, 3)

	pal, err := colormap.Default().Palette("husl", 10)
	require.NoError(t, err)
	assert.Equal(t, pal[4], res.Colors[1])

	_, err = pipeline.Prepare(in, config.Set{"hue": []float64{1, 2}})
	assert.ErrorIs(t, err, pipeline.ErrHueLength)

	_, err = pipeline.Prepare(in, config.Set{"hue": []any{"a", 1, 2}})
	assert.ErrorIs(t, err, config.ErrOptionType)
}

func TestPrepare_WithProvider(t *testing.T) {
	black := colorful.Color{}
	p := colormap.ProviderFunc(func(_ string, n int) ([]colorful.Color, error) {
		return make([]colorful.Color, n), nil
	})
	in := series.FromMatrix(mat.NewDense(2, 1, []float64{0, 1}))
	res, err := pipeline.Prepare(in, config.Set{"hue": []float64{0, 1}}, pipeline.WithProvider(p))
	require.NoError(t, err)
	assert.Equal(t, []colorful.Color{black, black}, res.Colors)

	assert.Panics(t, func() { pipeline.WithProvider(nil) })
}

func TestPrepare_Animate(t *testing.T) {
	in := series.FromMatrices(
		mat.NewDense(3, 1, []float64{0, 1, 2}),
		mat.NewDense(2, 1, []float64{5, 5}),
	)
	res, err := pipeline.Prepare(in, config.Set{"animate": true, "interp_val": 2})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, series.RowCounts(res.Series))
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5}, res.Series[0].RawMatrix().Data, 1e-12)

	short := series.FromMatrices(mat.NewDense(1, 1, []float64{0}), mat.NewDense(2, 1, []float64{0, 1}))
	res, err = pipeline.Prepare(short, config.Set{"animate": true})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, smooth.ErrTooFewSamples)
	assert.ErrorIs(t, err, hyperprep.ErrDegenerateInput)
}

func TestPrepare_Style(t *testing.T) {
	res, err := pipeline.Prepare(twoByTwo(), config.Set{"colors": []string{"r", "g"}, "linewidth": 2})
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"color": "r", "linewidth": 2},
		{"color": "g", "linewidth": 2},
	}, res.Style)

	_, err = pipeline.Prepare(twoByTwo(), config.Set{"marker": []string{"o", "x", "+"}})
	assert.ErrorIs(t, err, hyperprep.ErrLengthMismatch)
}

func TestPrepare_InputAndConfigErrors(t *testing.T) {
	_, err := pipeline.Prepare(series.Input{}, nil)
	assert.ErrorIs(t, err, series.ErrUnsupportedInput)
	assert.Contains(t, err.Error(), pipeline.StageInput)

	_, err = pipeline.Prepare(twoByTwo(), config.Set{"ndims": 5})
	assert.ErrorIs(t, err, config.ErrBadNDims)
	assert.Contains(t, err.Error(), pipeline.StageConfig)

	_, err = pipeline.Prepare(series.FromVector([]float64{1, 2}), config.Set{"explore": true})
	assert.ErrorIs(t, err, hyperprep.ErrConfiguration)
}

func TestPrepare_LogsStages(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, err := pipeline.Prepare(twoByTwo(), config.Set{"normalize": true, "animate": true}, pipeline.WithLogger(log))
	require.NoError(t, err)

	all := strings.Join(lines, "\n")
	for _, msg := range []string{"resolved input", "normalized", "interpolated", "prepared"} {
		assert.Contains(t, all, msg)
	}
	assert.NotContains(t, all, "grouped by category")
}
