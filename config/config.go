// SPDX-License-Identifier: MIT
// Package: hyperprep/config
//
// config.go - option defaults, validation and typed access.
//
// Resolution order:
//  1. alias keys are rewritten to canonical names (colors -> color);
//  2. missing hyper options take their defaults;
//  3. every hyper option present is type-checked;
//  4. derived options are recomputed (save, backend);
//  5. cross-field rules run (ndims range, explore dimensionality, res).

package config

import (
	"maps"
	"reflect"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/broadcast"
)

const (
	opDefaults = "Defaults"
	opResolve  = "Resolve"
	opGet      = "Get"
)

// Fixed defaults that do not depend on the data.
const (
	DefaultStyle        = "whitegrid"
	DefaultPalette      = "hls"
	DefaultRotations    = 2
	DefaultDuration     = 30
	DefaultFrameRate    = 50
	DefaultTailDuration = 2
	DefaultRes          = 100
	DefaultInterpVal    = 10
	maxNDims            = 3
)

// Set is a flat option-name to value mapping.
type Set map[string]any

// Clone returns a shallow copy of s. A nil Set clones to an empty one.
func (s Set) Clone() Set {
	out := maps.Clone(s)
	if out == nil {
		out = Set{}
	}

	return out
}

// Defaults returns the default option set for the series list xs.
// ndims defaults to min(3, D0) where D0 is the first series' column count,
// and n_colors to the series count.
func Defaults(xs []*mat.Dense) (Set, error) {
	d0, err := firstDims(opDefaults, xs)
	if err != nil {
		return nil, err
	}

	return defaults(d0, len(xs)), nil
}

func defaults(d0, n int) Set {
	return Set{
		KeyNormalize:    false,
		KeyNDims:        min(maxNDims, d0),
		KeyStyle:        DefaultStyle,
		KeyPalette:      DefaultPalette,
		KeyNColors:      n,
		KeyAnimate:      false,
		KeyZoom:         0,
		KeyChemtrails:   false,
		KeyRotations:    DefaultRotations,
		KeyDuration:     DefaultDuration,
		KeyFrameRate:    DefaultFrameRate,
		KeyTailDuration: DefaultTailDuration,
		KeyReturnData:   false,
		KeySave:         false,
		KeyShow:         true,
		KeyLegend:       false,
		KeyLabels:       nil,
		KeyExplore:      false,
		KeyPicker:       false,
		KeySavePath:     "",
		KeyRes:          DefaultRes,
		KeyInterpVal:    DefaultInterpVal,
		KeyHue:          nil,
	}
}

// Resolve merges user with the defaults for xs and validates the result.
// user is never modified.
//
// ndims is checked against {1, 2, 3} only. It may exceed the first series'
// dimensionality: the default is min(3, D0), and an explicit larger value is
// left for the renderer, which pads samples with zeros (see series.Multipad).
//
// Errors:
//   - ErrNoSeries if xs is empty or its first series is nil.
//   - broadcast.ErrAliasConflict for "colors" together with "color" etc.
//   - ErrOptionType, ErrBadNDims, ErrExploreDims, ErrBadValue.
func Resolve(xs []*mat.Dense, user Set) (Set, error) {
	d0, err := firstDims(opResolve, xs)
	if err != nil {
		return nil, err
	}

	canon, err := broadcast.ParseEquivalentArgs(user)
	if err != nil {
		return nil, configErrorf(opResolve, err, "aliases")
	}
	out := Set(canon)
	for k, v := range defaults(d0, len(xs)) {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}

	for _, k := range slices.Sorted(maps.Keys(kinds)) {
		v, ok := out[k]
		if !ok {
			continue
		}
		if !kinds[k].accepts(v) {
			return nil, configErrorf(opResolve, ErrOptionType, "%s=%v (%T), want %s", k, v, v, kinds[k])
		}
	}

	savePath := out[KeySavePath].(string)
	out[KeySave] = out[KeySave].(bool) || savePath != ""
	if _, ok := out[KeyBackend]; !ok {
		out[KeyBackend] = BackendAgg
		if out[KeyShow].(bool) {
			out[KeyBackend] = BackendInteractive
		}
	}

	if nd := out[KeyNDims].(int); nd < 1 || nd > maxNDims {
		return nil, configErrorf(opResolve, ErrBadNDims, "ndims=%d", nd)
	}
	if out[KeyExplore].(bool) && d0 <= 1 {
		return nil, configErrorf(opResolve, ErrExploreDims, "explore=true dims=%d", d0)
	}
	for _, k := range []string{KeyRes, KeyInterpVal, KeyNColors} {
		if v := out[k].(int); v < 1 {
			return nil, configErrorf(opResolve, ErrBadValue, "%s=%d, want >= 1", k, v)
		}
	}

	return out, nil
}

// RemoveHyperArgs returns the options of s that preparation does not
// consume, i.e. the renderer style options.
func RemoveHyperArgs(s Set) Set {
	out := Set{}
	for k, v := range s {
		if !IsHyper(k) {
			out[k] = v
		}
	}

	return out
}

// firstDims returns the column count of the first series.
func firstDims(op string, xs []*mat.Dense) (int, error) {
	if len(xs) == 0 || xs[0] == nil {
		return 0, configErrorf(op, ErrNoSeries, "series=%d", len(xs))
	}
	_, c := xs[0].Dims()

	return c, nil
}

func (k kind) accepts(v any) bool {
	switch k {
	case kindBool:
		_, ok := v.(bool)
		return ok
	case kindInt:
		_, ok := v.(int)
		return ok
	case kindNumber:
		switch v.(type) {
		case int, float64:
			return true
		}
		return false
	case kindString:
		_, ok := v.(string)
		return ok
	default:
		return v == nil || isSeq(v)
	}
}

func isSeq(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Bool returns the bool option key.
func (s Set) Bool(key string) (bool, error) {
	v, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, configErrorf(opGet, ErrOptionType, "%s is %T, want bool", key, v)
	}

	return b, nil
}

// Int returns the int option key.
func (s Set) Int(key string) (int, error) {
	v, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, configErrorf(opGet, ErrOptionType, "%s is %T, want int", key, v)
	}

	return n, nil
}

// Float returns the numeric option key as float64; ints are widened.
func (s Set) Float(key string) (float64, error) {
	v, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	default:
		return 0, configErrorf(opGet, ErrOptionType, "%s is %T, want number", key, v)
	}
}

// String returns the string option key.
func (s Set) String(key string) (string, error) {
	v, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", configErrorf(opGet, ErrOptionType, "%s is %T, want string", key, v)
	}

	return str, nil
}

// Seq returns the sequence option key as a []any. A nil value yields a nil
// slice and no error, so callers test len() to see whether it was given.
func (s Set) Seq(key string) ([]any, error) {
	v, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if !isSeq(v) {
		return nil, configErrorf(opGet, ErrOptionType, "%s is %T, want sequence", key, v)
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, nil
}

// Floats returns the sequence option key with every element converted to
// float64. Only int and float64 elements are accepted.
func (s Set) Floats(key string) ([]float64, error) {
	seq, err := s.Seq(key)
	if err != nil || seq == nil {
		return nil, err
	}
	out := make([]float64, len(seq))
	for i, e := range seq {
		switch x := e.(type) {
		case float64:
			out[i] = x
		case int:
			out[i] = float64(x)
		default:
			return nil, configErrorf(opGet, ErrOptionType, "%s[%d] is %T, want number", key, i, e)
		}
	}

	return out, nil
}

func (s Set) lookup(key string) (any, error) {
	v, ok := s[key]
	if !ok {
		return nil, configErrorf(opGet, ErrMissing, "%s", key)
	}

	return v, nil
}
