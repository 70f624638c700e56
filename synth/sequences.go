// SPDX-License-Identifier: MIT
// Package: hyperprep/synth
//
// sequences.go - 1-D pulse and chirp generators.
//
// Contract:
//   • Length-n output, or nil when n < 1.
//   • O(n) time and memory; deterministic per (n, seed, options).

package synth

import (
	"math"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// Pulse returns a length-n pulse train with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2·frac − 1|.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1).
		frac = math.Mod(float64(i)*cfg.frequency, 1)
		if cfg.triangular {
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		} else if frac < cfg.duty {
			base = cfg.amplitude
		} else {
			base = 0
		}
		base += cfg.trend * float64(i)
		if cfg.noiseSigma > 0 {
			base += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}

// Chirp returns a length-n linear chirp whose frequency sweeps from f0 to f1.
// Model:
//   - fi   = f0 + (f1 − f0)·i/(n−1)
//   - θᵢ₊₁ = θᵢ + τ·fi
//   - yᵢ   = A·sin(θᵢ) + trend·i + noise
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	theta := 0.0
	var t, fi, val float64
	for i := 0; i < n; i++ {
		t = 0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.frequency + (cfg.chirpEnd-cfg.frequency)*t
		theta += tau * fi

		val = cfg.amplitude*math.Sin(theta) + cfg.trend*float64(i)
		if cfg.noiseSigma > 0 {
			val += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out
}
