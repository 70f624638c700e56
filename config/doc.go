// SPDX-License-Identifier: MIT

// Package config resolves the flat option set that drives a preparation run.
//
// A Set maps option names to values. Resolve merges a user Set with the
// defaults derived from the data (ndims, n_colors), rewrites alias keys to
// their canonical names and validates option types and cross-field rules:
//
//	set, err := config.Resolve(xs, config.Set{"normalize": true, "palette": "husl"})
//	if errors.Is(err, hyperprep.ErrConfiguration) { ... }
//
// Resolve is idempotent: resolving an already resolved Set against the same
// data yields an equal Set. Unrecognized options pass through untouched and
// are what RemoveHyperArgs returns.
//
// Load reads a Set from a TOML file; TOML integers are normalized to int so a
// loaded Set validates exactly like one built in Go.
package config
