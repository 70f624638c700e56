// SPDX-License-Identifier: MIT
// Package: hyperprep/pipeline
//
// pipeline.go - Prepare and its stages.

package pipeline

import (
	"fmt"
	"reflect"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/broadcast"
	"github.com/katalvlaran/hyperprep/category"
	"github.com/katalvlaran/hyperprep/colormap"
	"github.com/katalvlaran/hyperprep/config"
	"github.com/katalvlaran/hyperprep/normalize"
	"github.com/katalvlaran/hyperprep/series"
	"github.com/katalvlaran/hyperprep/smooth"
)

// Stage names used in errors and log lines.
const (
	StageInput     = "input"
	StageConfig    = "config"
	StageNormalize = "normalize"
	StageLabels    = "labels"
	StageHue       = "hue"
	StageAnimate   = "animate"
	StageStyle     = "style"
)

// Result is the renderer-ready outcome of Prepare.
type Result struct {
	// Config is the resolved option set, hyper and style options alike.
	Config config.Set

	// Series are the output series: one per category when labels were
	// given, otherwise one per input series, upsampled when animating.
	Series []*mat.Dense

	// Categories holds the category index of every input sample in
	// series-then-sample order. Nil without labels.
	Categories []int

	// Bins and Colors hold the hue bin and color of every input sample in
	// series-then-sample order. Nil without hue.
	Bins   []int
	Colors []colorful.Color

	// Style holds one renderer option mapping per output series.
	Style []map[string]any
}

// Prepare resolves in, applies user options and runs every enabled stage.
func Prepare(in series.Input, user config.Set, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	log := o.log.WithValues("input", in.Kind().String())

	xs, err := in.Resolve()
	if err != nil {
		return nil, stageErrorf(StageInput, err)
	}
	log.V(1).Info("resolved input", "series", len(xs))

	set, err := config.Resolve(xs, user)
	if err != nil {
		return nil, stageErrorf(StageConfig, err)
	}
	res := &Result{Config: set}
	counts := series.RowCounts(xs)

	if set[config.KeyNormalize].(bool) {
		if xs, err = normalize.CenterScale(xs); err != nil {
			return nil, stageErrorf(StageNormalize, err)
		}
		log.V(1).Info("normalized", "series", len(xs))
	}

	labels, err := set.Seq(config.KeyLabels)
	if err != nil {
		return nil, stageErrorf(StageLabels, err)
	}
	if len(labels) > 0 {
		perSample, err := sampleLabels(labels, counts)
		if err != nil {
			return nil, stageErrorf(StageLabels, err)
		}
		if xs, err = category.ReshapeSeries(xs, perSample); err != nil {
			return nil, stageErrorf(StageLabels, err)
		}
		res.Categories = category.GroupByCategory(perSample)
		log.V(1).Info("grouped by category", "categories", len(xs))
	}

	hue, err := set.Floats(config.KeyHue)
	if err != nil {
		return nil, stageErrorf(StageHue, err)
	}
	if len(hue) > 0 {
		if err := hueColors(res, hue, counts, o.provider); err != nil {
			return nil, stageErrorf(StageHue, err)
		}
		log.V(1).Info("mapped hue", "samples", len(hue), "palette", set[config.KeyPalette])
	}

	if set[config.KeyAnimate].(bool) {
		k := set[config.KeyInterpVal].(int)
		if xs, err = smooth.InterpArrayList(xs, k); err != nil {
			return nil, stageErrorf(StageAnimate, err)
		}
		log.V(1).Info("interpolated", "factor", k)
	}

	if res.Style, err = style(xs, set); err != nil {
		return nil, stageErrorf(StageStyle, err)
	}
	res.Series = xs
	log.V(1).Info("prepared", "series", len(xs))

	return res, nil
}

// sampleLabels expands labels to one per stacked sample. labels may hold one
// value per sample, one value per series, or one sequence per series.
func sampleLabels(labels []any, counts []int) ([]any, error) {
	total := 0
	for _, c := range counts {
		total += c
	}

	var out []any
	switch {
	case allSeqs(labels):
		if len(labels) != len(counts) {
			return nil, fmt.Errorf("labels=%d samples=%d series=%d: %w", len(labels), total, len(counts), ErrLabelLength)
		}
		for i, l := range labels {
			rv := reflect.ValueOf(l)
			if rv.Len() != counts[i] {
				return nil, fmt.Errorf("series %d: labels=%d samples=%d: %w", i, rv.Len(), counts[i], ErrLabelLength)
			}
			for j := 0; j < rv.Len(); j++ {
				out = append(out, rv.Index(j).Interface())
			}
		}
	case len(labels) == total:
		out = labels
	case len(labels) == len(counts):
		out = make([]any, 0, total)
		for i, l := range labels {
			for range counts[i] {
				out = append(out, l)
			}
		}
	default:
		return nil, fmt.Errorf("labels=%d samples=%d series=%d: %w", len(labels), total, len(counts), ErrLabelLength)
	}

	for i, l := range out {
		if l == nil || !reflect.TypeOf(l).Comparable() {
			return nil, fmt.Errorf("label %d (%T): %w", i, l, ErrLabelType)
		}
	}

	return out, nil
}

func allSeqs(vs []any) bool {
	for _, v := range vs {
		if v == nil {
			return false
		}
		switch reflect.TypeOf(v).Kind() {
		case reflect.Slice, reflect.Array:
		default:
			return false
		}
	}

	return true
}

// hueColors fills res.Bins and res.Colors from per-sample hue values.
func hueColors(res *Result, hue []float64, counts []int, p colormap.Provider) error {
	total := 0
	for _, c := range counts {
		total += c
	}
	if len(hue) != total {
		return fmt.Errorf("hue=%d samples=%d: %w", len(hue), total, ErrHueLength)
	}

	n, _ := res.Config.Int(config.KeyRes)
	name, _ := res.Config.String(config.KeyPalette)
	bins, err := colormap.Vals2Bins(hue, n)
	if err != nil {
		return err
	}
	colors, err := colormap.Vals2Colors(hue, name, n, p)
	if err != nil {
		return err
	}
	res.Bins, res.Colors = bins, colors

	return nil
}

// style broadcasts the renderer options of set over the output series.
func style(xs []*mat.Dense, set config.Set) ([]map[string]any, error) {
	canon, err := broadcast.ParseEquivalentArgs(config.RemoveHyperArgs(set))
	if err != nil {
		return nil, err
	}
	kwargs := make(map[string]broadcast.Arg, len(canon))
	for k, v := range canon {
		kwargs[k] = broadcast.ArgOf(v)
	}

	return broadcast.ParseKwargs(xs, kwargs)
}
