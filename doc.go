// Package lvgrid is a small toolkit for mutable two-dimensional grids of
// arbitrary values.
//
// What is lvgrid?
//
//	A zero-surprise, generic dense matrix with cheap structural edits:
//		• matrix/   : Dense[T]: At/Set, insert & delete rows/columns with
//		               geometric capacity growth, region & line fills,
//		               clone, equality and hashing
//		• gridgraph/: cells as a grid graph: 4/8-connected components and
//		               flood fill over any Dense[T]
//		• gonumview/: hand a Dense[float64] to gonum's mat package as a live
//		               view or a copy
//
// Quick ASCII example:
//
//	m, _ := matrix.NewDense(3, 3, ".")
//	_ = m.FillLine(0, 0, 1, 1, 3, 3, "x")
//
//	    [x, ., .]
//	    [., x, .]
//	    [., ., x]
//
// Dense is not safe for concurrent mutation; guard shared values with a
// mutex of your own.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
