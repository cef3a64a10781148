// Package matrix provides Dense, a mutable generic two-dimensional container
// with cheap structural edits.
//
// What & Why:
//
//	Dense[T] stores opaque values of any type T in rows of a shared physical
//	capacity. Its logical width and height can be smaller than that capacity,
//	so inserting rows and columns reallocates geometrically instead of on
//	every call, and deleting never reallocates at all. The container performs
//	no arithmetic on its values.
//
// Operations:
//
//   - Access:     At, Set, Row, Col, Width, Height, Shape, Default, Cap.
//   - Structure:  InsertRow, InsertRowValues, InsertCol, InsertColValues,
//     DeleteRow, DeleteCol.
//   - Bulk:       FillRegion, FillLine, Do, Apply, ToSlices, FromSlices.
//   - Identity:   Clone, Equal, EqualFunc, Hash, HashFunc, String.
//
// Bounds:
//
//	Cell coordinates are valid in the half-open [0,Height()) × [0,Width()).
//	Insertions additionally accept the dimension itself as an append
//	position; deletions and At/Set do not.
//
// Complexity:
//
//	At/Set/Width/Height are O(1). InsertRow is amortized O(1) in
//	reallocation plus an O(h) shift of row headers. InsertCol and DeleteCol
//	touch every row and cost O(w*h). DeleteRow is O(h).
//
// Errors:
//
//   - ErrOutOfRange: an index, rectangle or line start lies outside the matrix.
//   - ErrSizeMismatch: a supplied row or column has the wrong length.
//   - ErrInvalidSize: a negative width or height at construction.
//   - ErrNilMatrix: a nil *Dense where a matrix is required.
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. Callers sharing one across
//	goroutines must guard the whole value with their own mutex.
package matrix
