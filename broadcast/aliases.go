// SPDX-License-Identifier: MIT
// Package: hyperprep/broadcast
//
// aliases.go - canonical option names.

package broadcast

import (
	"maps"
	"slices"
)

// aliases maps plural option names to their canonical singular form.
var aliases = map[string]string{
	"colors":     "color",
	"linestyles": "linestyle",
	"markers":    "marker",
}

// Canonical returns the canonical name for an option key.
func Canonical(key string) string {
	if c, ok := aliases[key]; ok {
		return c
	}

	return key
}

// ParseEquivalentArgs returns a copy of kwargs with alias keys rewritten to
// their canonical names. Values are never touched.
//
// Errors:
//   - ErrAliasConflict if an alias and its canonical name are both present.
func ParseEquivalentArgs(kwargs map[string]any) (map[string]any, error) {
	out := maps.Clone(kwargs)
	if out == nil {
		out = map[string]any{}
	}
	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		canonical := aliases[alias]
		v, ok := out[alias]
		if !ok {
			continue
		}
		if _, dup := out[canonical]; dup {
			return nil, broadcastErrorf("ParseEquivalentArgs", ErrAliasConflict, "%q and %q", alias, canonical)
		}
		delete(out, alias)
		out[canonical] = v
	}

	return out, nil
}
