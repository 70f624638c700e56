// Package smooth upsamples sequences with a shape-preserving (monotone)
// piecewise cubic interpolant.
//
// 🚀 Why shape-preserving?
//
//	A plain cubic spline overshoots near sharp changes and invents extrema
//	that are not in the data. The Fritsch–Butland interpolant used here keeps
//	every segment between two samples inside the range of those samples, so
//	monotone runs stay monotone and nothing overshoots.
//
// ✨ Sampling:
//
//	A sequence y[0..n-1] is treated as samples at x = 0..n-1. With factor k,
//	the output holds k·(n−1) points at x = i/k for i = 0..k·(n−1)−1, i.e. the
//	domain [0, n−1) at k times the original density. Output[0] == y[0].
//
// ⚙️ Usage:
//
//	yy, err := smooth.InterpArray(y, 10)
//	zs, err := smooth.InterpArrayList(xs, 10) // one matrix per series, in parallel
package smooth
