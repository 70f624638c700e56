// Package normalize moves a dataset into a shared coordinate frame.
//
// Both transforms compute their statistics over the stacked view of every
// series (see series.Stack) and then apply the same affine map to each series,
// so relative positions between series are preserved.
//
//   - Center subtracts the global per-column mean (zero global mean).
//   - Scale maps the global value range onto [-1, 1]; the global minimum lands
//     exactly on -1 and the global maximum exactly on 1.
//
// Inputs are never mutated; outputs keep series order and shapes.
package normalize
