// SPDX-License-Identifier: MIT
// Package: hyperprep/synth
//
// options.go - functional options and the resolved generator config.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via the seed argument or WithRand.
//   • newConfig applies options in order (later overrides earlier).

package synth

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0   // signal amplitude A (>0)
	defaultFrequency  = 0.125 // pulse base frequency f0 (cycles/sample)
	defaultChirpEnd   = 0.25  // chirp end frequency f1 (cycles/sample)
	defaultDuty       = 0.5   // rectangular duty cycle in [0,1]
	defaultTrend      = 0.0   // linear trend increment per sample
	defaultNoiseSigma = 0.0   // additive Gaussian noise stdev
	defaultStepSigma  = 1.0   // random-walk step stdev
)

// Option customizes a generator by mutating the resolved config.
type Option func(*config)

// config is the single source of truth for generator knobs.
type config struct {
	rng        *rand.Rand
	amplitude  float64
	frequency  float64
	chirpEnd   float64
	duty       float64
	triangular bool
	trend      float64
	noiseSigma float64
	stepSigma  float64
}

// newConfig builds a config with deterministic defaults and applies opts.
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		chirpEnd:   defaultChirpEnd,
		duty:       defaultDuty,
		trend:      defaultTrend,
		noiseSigma: defaultNoiseSigma,
		stepSigma:  defaultStepSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithRand provides an explicit shared RNG; it overrides the seed argument.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithAmplitude sets the amplitude A (>0) of Pulse and Chirp.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base frequency f0 (>0): the pulse rate, or the chirp
// start frequency.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency = f0 }
}

// WithChirpEnd sets the chirp end frequency f1 (>0).
func WithChirpEnd(f1 float64) Option {
	if f1 <= 0 {
		panic("synth: WithChirpEnd(f1<=0)")
	}
	return func(c *config) { c.chirpEnd = f1 }
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic("synth: WithDuty(d outside [0,1])")
	}
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds k·i to sample i. Any real value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise sets additive Gaussian noise sigma (>=0).
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noiseSigma = sigma }
}

// WithStep sets the random-walk step sigma (>0).
func WithStep(sigma float64) Option {
	if sigma <= 0 {
		panic("synth: WithStep(sigma<=0)")
	}
	return func(c *config) { c.stepSigma = sigma }
}
