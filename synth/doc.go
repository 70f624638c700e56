// Package synth produces deterministic synthetic datasets for examples, tests
// and benchmarks.
//
// ✨ Generators:
//   - Walk    - a D-dimensional Gaussian random-walk trajectory (one series)
//   - Dataset - several independent walks (a multi-series dataset)
//   - Pulse   - rectangular or triangular pulse train (1-D)
//   - Chirp   - linear frequency sweep (1-D)
//   - Labels  - per-sample category labels drawn from a fixed level set
//
// Every generator is a pure function of (size, seed, options): the same call
// always yields the same data. Invalid sizes yield nil, never a panic; option
// constructors panic on nonsensical values (programmer error).
//
// ⚙️ Usage:
//
//	xs := synth.Dataset(3, 100, 3, 42, synth.WithNoise(0.1))
//	y := synth.Chirp(256, 1, synth.WithAmplitude(2))
package synth
