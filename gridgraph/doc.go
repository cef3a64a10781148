// Package gridgraph treats a matrix.Dense as a grid graph whose vertices are
// cells and whose edges join neighboring cells.
//
// What:
//
//   - ConnectedComponents groups cells accepted by a predicate into 4- or
//     8-connected regions ("islands").
//   - FloodFill repaints the connected region of cells matching a start cell,
//     the bucket-fill companion to matrix.Dense.FillRegion and FillLine.
//
// Both read and write only through the matrix's public surface (At, Set,
// Do, Width, Height), so they work for any cell type T.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - FloodFill:           O(R×d),   Memory: O(R)     (R = region size).
//
// Errors:
//
//   - ErrNilMatrix: nil matrix.
//   - ErrNilPredicate: nil keep/same callback.
//   - ErrConnectivity: unknown Connectivity.
//   - matrix.ErrOutOfRange: FloodFill start outside the matrix.
package gridgraph
