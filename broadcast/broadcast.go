// SPDX-License-Identifier: MIT
// Package: hyperprep/broadcast
//
// broadcast.go - per-series expansion of positional and keyword arguments.
//
// Contract:
//   • Output length always equals the series count, in series order.
//   • Validation covers every argument before any output is built, so a
//     failure never leaves a partially expanded result.
//   • Keyword errors are reported for the lexicographically first bad key,
//     independent of map iteration order.

package broadcast

import (
	"maps"
	"reflect"
	"slices"
)

const (
	opExpand      = "Expand"
	opParseArgs   = "ParseArgs"
	opParseKwargs = "ParseKwargs"
)

// Arg is one argument value: a scalar or a sequence.
type Arg struct {
	values []any
	seq    bool
}

// Scalar wraps a value that is replicated to every series as is, even when
// the value itself is a slice.
func Scalar(v any) Arg { return Arg{values: []any{v}} }

// Seq wraps a per-series sequence.
func Seq(vs ...any) Arg { return Arg{values: vs, seq: true} }

// SeqOf wraps a typed slice as a per-series sequence.
func SeqOf[T any](vs []T) Arg {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return Arg{values: out, seq: true}
}

// ArgOf classifies an untyped value: slices and arrays become sequences,
// everything else (strings included) a scalar.
func ArgOf(v any) Arg {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return Arg{values: out, seq: true}
	default:
		return Scalar(v)
	}
}

// IsSeq reports whether a was built as a sequence.
func (a Arg) IsSeq() bool { return a.seq }

// Len returns the number of wrapped values (1 for a scalar).
func (a Arg) Len() int { return len(a.values) }

// Expand applies the broadcast rule to vals for n series: length 1 is
// replicated, length n is returned as a copy, anything else fails.
func Expand[T any](n int, vals []T) ([]T, error) {
	switch len(vals) {
	case n:
		return slices.Clone(vals), nil
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	default:
		return nil, broadcastErrorf(opExpand, ErrLengthMismatch, "got %d values for %d series", len(vals), n)
	}
}

// expand resolves a to exactly n values. A scalar is a one-element sequence
// under the broadcast rule.
func (a Arg) expand(n int) ([]any, error) {
	return Expand(n, a.values)
}

// ParseArgs returns one positional argument tuple per series. Tuple i holds,
// for every argument in order, its value for series i.
//
// Errors:
//   - ErrLengthMismatch naming the offending argument position.
func ParseArgs[S any](series []S, args ...Arg) ([][]any, error) {
	n := len(series)
	cols := make([][]any, len(args))
	for j, a := range args {
		vals, err := a.expand(n)
		if err != nil {
			return nil, broadcastErrorf(opParseArgs, err, "argument %d", j)
		}
		cols[j] = vals
	}

	out := make([][]any, n)
	for i := range out {
		tuple := make([]any, len(args))
		for j := range args {
			tuple[j] = cols[j][i]
		}
		out[i] = tuple
	}

	return out, nil
}

// ParseKwargs returns one keyword mapping per series.
//
// Errors:
//   - ErrLengthMismatch naming the offending keyword.
func ParseKwargs[S any](series []S, kwargs map[string]Arg) ([]map[string]any, error) {
	n := len(series)
	keys := slices.Sorted(maps.Keys(kwargs))
	cols := make(map[string][]any, len(kwargs))
	for _, k := range keys {
		vals, err := kwargs[k].expand(n)
		if err != nil {
			return nil, broadcastErrorf(opParseKwargs, err, "keyword %q", k)
		}
		cols[k] = vals
	}

	out := make([]map[string]any, n)
	for i := range out {
		m := make(map[string]any, len(kwargs))
		for k, vals := range cols {
			m[k] = vals[i]
		}
		out[i] = m
	}

	return out, nil
}
