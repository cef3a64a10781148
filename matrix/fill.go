// SPDX-License-Identifier: MIT

package matrix

// FillRegion sets every cell of the half-open rectangle [row0,row1) × [col0,col1) to v.
// MAIN DESCRIPTION:
//   - Bulk write over a rectangle; an empty or inverted rectangle is a no-op.
//
// Implementation:
//   - Stage 1: validate all four bounds (rows in [0,h], cols in [0,w]).
//   - Stage 2: row-major double loop over the rectangle.
//
// Behavior highlights:
//   - row1 == Height() and col1 == Width() are legal end bounds.
//   - Bounds are checked before the first write; nothing is written on error.
//
// Errors:
//   - ErrOutOfRange when any bound lies outside its valid range.
//
// Complexity:
//   - Time O((row1-row0)*(col1-col0)), Space O(1).
func (m *Dense[T]) FillRegion(row0, col0, row1, col1 int, v T) error {
	if row0 < 0 || row0 > m.h || row1 < 0 || row1 > m.h ||
		col0 < 0 || col0 > m.w || col1 < 0 || col1 > m.w {
		return denseErrorf(ctxFillRegion, ErrOutOfRange, row0, col0, row1, col1)
	}

	var i, j int
	for i = row0; i < row1; i++ {
		r := m.rows[i]
		for j = col0; j < col1; j++ {
			r[j] = v
		}
	}

	return nil
}

// FillLine writes v along a straight line of cells.
// MAIN DESCRIPTION:
//   - Starting at (row0,col0), write v and step by (drow,dcol) until the
//     position leaves the matrix or reaches the exclusive upper end bound.
//
// Implementation:
//   - Stage 1: validate the start cell lies in [0,h) × [0,w).
//   - Stage 2: loop while the position is in bounds and before the end.
//
// Behavior highlights:
//   - (row1,col1) are exclusive upper bounds: rows stop at row >= row1 only
//     when drow > 0, likewise for columns. A zero or negative step ignores
//     that axis' end bound and runs until the matrix edge.
//   - Horizontal, vertical, diagonal and anti-diagonal lines share one loop.
//   - A (0,0) step writes the start cell exactly once.
//
// Errors:
//   - ErrOutOfRange when the start cell is outside the matrix.
//
// Complexity:
//   - Time O(number of cells written), Space O(1).
func (m *Dense[T]) FillLine(row0, col0, drow, dcol, row1, col1 int, v T) error {
	if !m.inBounds(row0, col0) {
		return denseErrorf(ctxFillLine, ErrOutOfRange, row0, col0, drow, dcol, row1, col1)
	}
	if drow == 0 && dcol == 0 {
		m.rows[row0][col0] = v

		return nil
	}

	row, col := row0, col0
	for m.inBounds(row, col) && beforeEnd(row, drow, row1) && beforeEnd(col, dcol, col1) {
		m.rows[row][col] = v
		row += drow
		col += dcol
	}

	return nil
}

// beforeEnd reports whether pos is still below the exclusive upper bound end.
// Only a positive step can reach it.
func beforeEnd(pos, step, end int) bool {
	if step > 0 {
		return pos < end
	}

	return true
}
