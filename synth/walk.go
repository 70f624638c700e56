// SPDX-License-Identifier: MIT
// Package: hyperprep/synth
//
// walk.go - multi-dimensional trajectories and labels.

package synth

import (
	"gonum.org/v1/gonum/mat"
)

// Walk returns an n×dims Gaussian random walk starting at the origin.
// Step i adds stepSigma·N(0,1) per dimension, plus trend·i and optional
// observation noise on top of the walk. Returns nil if n < 1 or dims < 1.
func Walk(n, dims int, seed int64, opts ...Option) *mat.Dense {
	if n < 1 || dims < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := mat.NewDense(n, dims, nil)
	pos := make([]float64, dims)
	for i := 0; i < n; i++ {
		for j := 0; j < dims; j++ {
			if i > 0 {
				pos[j] += cfg.stepSigma * rng.NormFloat64()
			}
			v := pos[j] + cfg.trend*float64(i)
			if cfg.noiseSigma > 0 {
				v += cfg.noiseSigma * rng.NormFloat64()
			}
			out.Set(i, j, v)
		}
	}

	return out
}

// Dataset returns count independent walks of n samples each. Series k is
// seeded with seed+k unless WithRand supplies a shared stream.
// Returns nil on invalid sizes.
func Dataset(count, n, dims int, seed int64, opts ...Option) []*mat.Dense {
	if count < 1 || n < 1 || dims < 1 {
		return nil
	}
	out := make([]*mat.Dense, count)
	for k := range out {
		out[k] = Walk(n, dims, seed+int64(k), opts...)
	}

	return out
}

// Labels returns n labels drawn uniformly from levels. Returns nil when n < 1
// or levels is empty.
func Labels(n int, levels []string, seed int64, opts ...Option) []string {
	if n < 1 || len(levels) == 0 {
		return nil
	}
	rng := rngFrom(newConfig(opts...), seed)

	out := make([]string, n)
	for i := range out {
		out[i] = levels[rng.Intn(len(levels))]
	}

	return out
}
