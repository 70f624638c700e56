// SPDX-License-Identifier: MIT
// Package: hyperprep/config
//
// load.go - TOML option files.
//
// A file is a flat table of options; nested tables are kept as
// map[string]any values and forwarded like any other unrecognized option:
//
//	normalize = true
//	palette   = "GnBu_d"
//	labels    = ["a", "a", "b"]
//	linewidth = 2

package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

const (
	opLoad   = "Load"
	opDecode = "Decode"
)

// Load reads the options stored in the TOML file at path.
//
// Errors:
//   - ErrDecode wrapping the read or parse failure (errors.Is also matches
//     the underlying fs error, e.g. fs.ErrNotExist).
func Load(path string) (Set, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: %s: %w: %w", opLoad, path, ErrDecode, err)
	}

	return fromTOML(raw), nil
}

// Decode reads TOML options from r.
func Decode(r io.Reader) (Set, error) {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opDecode, ErrDecode, err)
	}

	return fromTOML(raw), nil
}

func fromTOML(raw map[string]any) Set {
	out := make(Set, len(raw))
	for k, v := range raw {
		out[k] = normalize(v)
	}

	return out
}

// normalize turns TOML int64 into int, recursively.
func normalize(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
