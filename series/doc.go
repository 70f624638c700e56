// Package series defines the dataset representation shared by every
// hyperprep transform and the boundary adapter that produces it.
//
// 🚀 What is a Series?
//
//	A Series is an ordered sequence of samples, each a fixed-length numeric
//	vector. It is stored as an r×d *mat.Dense (rows = samples, columns = the
//	dimensionality D). A dataset is an ordered []*mat.Dense; order is the
//	render/legend order and is never changed implicitly.
//
// ✨ Key pieces:
//   - Input - a tagged variant (matrix, matrices, frame, frames) resolved once
//     at the boundary; transforms never sniff input types themselves.
//   - Stack - the row-wise concatenation used for global statistics.
//   - Frame - a minimal tabular frame; Frame.Matrix one-hot encodes text
//     columns so frames enter the pipeline as plain numeric matrices.
//   - Multipad / PatchLines - rendering helpers for ragged widths and for
//     connecting adjacent groups.
//
// ⚙️ Usage:
//
//	in := series.FromMatrices(a, b)
//	xs, err := in.Resolve()
//	stacked, err := series.Stack(xs)
//
// Every function returns fresh matrices; caller-owned inputs are read-only.
package series
