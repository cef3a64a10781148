// Package gonumview connects matrix.Dense[float64] to gonum's mat package.
//
// What:
//
//   - View exposes a live, read-only mat.Matrix over a Dense without copying.
//   - ToDense and FromMatrix copy between the two representations.
//
// Why:
//
//	matrix.Dense is a container with cheap structural edits and no
//	arithmetic. When a float64 grid needs linear algebra, hand it to gonum
//	through this package instead of re-implementing numeric kernels.
//
// Orientation: gonum's (r, c) is (Height(), Width()) of the Dense.
package gonumview
