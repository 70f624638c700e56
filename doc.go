// Package hyperprep prepares heterogeneous, possibly multi-series numeric
// datasets for downstream rendering: normalized, temporally interpolated and
// visually encoded arrays plus per-sample metadata.
//
// 🚀 What is hyperprep?
//
//	A small, deterministic preprocessing toolkit that brings together:
//		• Input adaptation: matrices, vectors and tabular frames → series
//		• Normalization: global centering and [-1, 1] scaling
//		• Categories: first-occurrence label indexing and regrouping
//		• Value mapping: equal-width binning and palette colors
//		• Smoothing: monotone (shape-preserving) cubic upsampling
//		• Broadcasting: per-series expansion of style arguments
//		• Configuration: defaulting and validation of the option surface
//
// ✨ Why hyperprep?
//
//   - Pure functions – no global state, safe for concurrent use
//   - All-or-nothing – every transform validates before it allocates
//   - One error taxonomy – errors.Is against the sentinels in this package
//
// Under the hood, everything is organized under subpackages:
//
//	series/    - Series, stacked views, input adapter, frames
//	normalize/ - Center, Scale
//	category/  - GroupByCategory, ReshapeData
//	colormap/  - Vals2Bins, Vals2Colors, palette providers
//	smooth/    - InterpArray, InterpArrayList
//	broadcast/ - ParseArgs, ParseKwargs, ParseEquivalentArgs
//	config/    - option defaults, validation, TOML loading
//	pipeline/  - the end-to-end Prepare call
//	synth/     - seeded synthetic datasets for demos and tests
//	cmd/hyperprep - CSV in, JSON out command line front end
//
//	go get github.com/katalvlaran/hyperprep
package hyperprep
