// Package broadcast expands scalar or per-series arguments into one argument
// set per series.
//
// 🚀 The rule (one function, no implicit type sniffing):
//
//	scalar, or sequence of length 1 ⇒ the value is replicated to every series
//	sequence of length N (N = series count) ⇒ element i goes to series i
//	anything else ⇒ ErrLengthMismatch; nothing is truncated or padded
//
// Callers state intent explicitly with Scalar(v) or Seq(v...). ArgOf exists
// for the configuration boundary, where values arrive untyped (decoded TOML,
// JSON); it is the only place reflection decides between the two.
//
// ⚙️ Usage:
//
//	sets, err := broadcast.ParseArgs(xs, broadcast.Seq(1, 2, 3))
//	// sets == [[1] [2] [3]] for three series
//
//	kw, err := broadcast.ParseKwargs(xs, map[string]broadcast.Arg{
//		"color":     broadcast.Seq("r", "g", "b"),
//		"linewidth": broadcast.Scalar(2),
//	})
package broadcast
