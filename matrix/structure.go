// SPDX-License-Identifier: MIT

// Package matrix - structural edits on Dense: row/column insertion and deletion.
//
// Growth policy:
//   - Rows: when every physical row slot is live, the slice of row headers grows
//     to max(cap*growth, h+1). Only headers are copied; cell data stays put.
//   - Columns: when every physical cell of a row is live, each live row is
//     reallocated to max(colCap*growth, w+1) cells. Spare row buffers are
//     dropped because their length no longer matches colCap.
//   - Deletion never shrinks capacity. Vacated cells are reset to the zero value
//     so the matrix does not keep references it no longer exposes.
//
// Bounds:
//   - Insert positions accept [0, dim] (dim itself means "append").
//   - Delete positions accept [0, dim) only.
package matrix

// grow returns the next capacity for a dimension whose capacity is
// exhausted: cur*growth, but never less than need.
func (m *Dense[T]) grow(cur, need int) int {
	return max(cur*m.growth, need)
}

// filled returns n copies of the default value.
func (m *Dense[T]) filled(n int) []T {
	vals := make([]T, n)
	for i := range vals {
		vals[i] = m.deflt
	}

	return vals
}

// InsertRow inserts a row of Width() default values before row at.
// at == Height() appends. Returns ErrOutOfRange unless 0 <= at <= Height().
// Complexity: amortized O(1) reallocation, O(h) header shift, O(w) fill.
func (m *Dense[T]) InsertRow(at int) error {
	if at < 0 || at > m.h {
		return denseErrorf(ctxInsertRow, ErrOutOfRange, at)
	}
	m.insertRow(at, m.filled(m.w))

	return nil
}

// InsertRowValues inserts vals as a new row before row at.
// MAIN DESCRIPTION:
//   - Same placement rules as InsertRow; vals are copied into the matrix.
//
// Errors:
//   - ErrOutOfRange unless 0 <= at <= Height().
//   - ErrSizeMismatch unless len(vals) == Width().
//
// Complexity:
//   - Amortized O(1) reallocation, O(h) header shift, O(w) copy.
func (m *Dense[T]) InsertRowValues(at int, vals []T) error {
	if at < 0 || at > m.h {
		return denseErrorf(ctxInsertRow, ErrOutOfRange, at)
	}
	if len(vals) != m.w {
		return denseErrorf(ctxInsertRow, ErrSizeMismatch, at, len(vals))
	}
	m.insertRow(at, vals)

	return nil
}

// insertRow performs the insertion; at and vals are already validated.
// Implementation:
//   - Stage 1: grow the header slice if no spare slot is left.
//   - Stage 2: take the spare buffer at slot h (reallocate when missing or stale).
//   - Stage 3: shift headers [at,h) down by one and place the buffer at slot at.
func (m *Dense[T]) insertRow(at int, vals []T) {
	if m.h == len(m.rows) {
		rows := make([][]T, m.grow(len(m.rows), m.h+1))
		copy(rows, m.rows[:m.h])
		m.rows = rows
	}

	spare := m.rows[m.h]
	if len(spare) != m.colCap {
		spare = make([]T, m.colCap)
	}
	copy(m.rows[at+1:m.h+1], m.rows[at:m.h])
	copy(spare, vals)
	m.rows[at] = spare
	m.h++
}

// InsertCol inserts a column of Height() default values before column at.
// at == Width() appends. Returns ErrOutOfRange unless 0 <= at <= Width().
//
// Column insertion touches every row and is O(h*w), unlike InsertRow; prefer
// building wide matrices row by row when the choice exists.
func (m *Dense[T]) InsertCol(at int) error {
	if at < 0 || at > m.w {
		return denseErrorf(ctxInsertCol, ErrOutOfRange, at)
	}
	m.insertCol(at, m.filled(m.h))

	return nil
}

// InsertColValues inserts vals (top to bottom) as a new column before column at.
//
// Errors:
//   - ErrOutOfRange unless 0 <= at <= Width().
//   - ErrSizeMismatch unless len(vals) == Height().
//
// Complexity:
//   - O(h*w): every row shifts its tail right; a reallocation also copies every row.
func (m *Dense[T]) InsertColValues(at int, vals []T) error {
	if at < 0 || at > m.w {
		return denseErrorf(ctxInsertCol, ErrOutOfRange, at)
	}
	if len(vals) != m.h {
		return denseErrorf(ctxInsertCol, ErrSizeMismatch, at, len(vals))
	}
	m.insertCol(at, vals)

	return nil
}

// insertCol performs the insertion; at and vals are already validated.
func (m *Dense[T]) insertCol(at int, vals []T) {
	var i int
	if m.w == m.colCap {
		m.colCap = m.grow(m.colCap, m.w+1)
		for i = 0; i < m.h; i++ {
			r := make([]T, m.colCap)
			copy(r, m.rows[i][:m.w])
			m.rows[i] = r
		}
		clear(m.rows[m.h:]) // spare buffers have the old length
	}

	for i = 0; i < m.h; i++ {
		r := m.rows[i]
		copy(r[at+1:m.w+1], r[at:m.w])
		r[at] = vals[i]
	}
	m.w++
}

// DeleteRow removes row, shifting the rows below it up by one.
// Returns ErrOutOfRange unless 0 <= row < Height(). Capacity is kept and the
// removed buffer is recycled by the next InsertRow.
// Complexity: O(h) header shift + O(w) clear.
func (m *Dense[T]) DeleteRow(row int) error {
	if row < 0 || row >= m.h {
		return denseErrorf(ctxDeleteRow, ErrOutOfRange, row)
	}

	removed := m.rows[row]
	copy(m.rows[row:m.h-1], m.rows[row+1:m.h])
	clear(removed[:m.w])
	m.rows[m.h-1] = removed
	m.h--

	return nil
}

// DeleteCol removes col from every row, shifting later columns left by one.
// Returns ErrOutOfRange unless 0 <= col < Width(). Capacity is kept.
// Complexity: O(h*w).
func (m *Dense[T]) DeleteCol(col int) error {
	if col < 0 || col >= m.w {
		return denseErrorf(ctxDeleteCol, ErrOutOfRange, col)
	}

	var zero T
	for i := 0; i < m.h; i++ {
		r := m.rows[i]
		copy(r[col:m.w-1], r[col+1:m.w])
		r[m.w-1] = zero
	}
	m.w--

	return nil
}
