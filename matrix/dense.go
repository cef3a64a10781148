// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (capacity-backed rows) & safe accessors.
//
// Purpose:
//   - Keep logical width/height separate from physical capacity so structural
//     edits (insert/delete of rows and columns) amortize their reallocations.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Layout:
//   - rows[i] is the physical buffer of row i; len(rows) is the row capacity.
//   - Every live row (i < h) has exactly colCap cells; cells at j >= w are stale.
//   - Spare slots (i >= h) are nil or a recycled buffer kept for reuse.
//
// Complexity quicksheet:
//   - NewDense: O(w*h); At/Set: O(1); Clone: O(w*h); InsertRow: amortized O(1)
//     reallocation + O(h) header shift; InsertCol/DeleteCol: O(w*h); DeleteRow: O(h).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a mutable two-dimensional container of opaque values of type T.
//   - w,h hold the logical dimensions (width = columns, height = rows).
//   - rows holds the physical storage; len(rows) >= h, colCap >= w.
//   - deflt fills cells created by InsertRow/InsertCol without explicit values.
//
// A Dense is not safe for concurrent mutation; wrap it in a mutex if needed.
type Dense[T any] struct {
	rows   [][]T // physical row buffers; len(rows) is the row capacity
	deflt  T     // default value for default-filled insertions
	w, h   int   // logical width and height
	colCap int   // physical cells per live row
	growth int   // geometric growth factor (>= 2)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates a width×height matrix with every cell set to deflt.
// MAIN DESCRIPTION:
//   - Public constructor; deflt is also recorded for later default-filled insertions.
//
// Implementation:
//   - Stage 1: validate width >= 0 && height >= 0; else ErrInvalidSize.
//   - Stage 2: resolve options (capacity reservations, growth factor).
//   - Stage 3: allocate height row buffers of colCap cells and fill [0,width) with deflt.
//
// Behavior highlights:
//   - Zero-sized shapes (0×0, 0×h, w×0) are legal.
//   - Without capacity options the physical size equals the logical size.
//
// Errors:
//   - ErrInvalidSize on negative dimensions.
//
// Complexity:
//   - Time O(w*h), Space O(rowCap*colCap) for the allocated rows.
func NewDense[T any](width, height int, deflt T, opts ...Option) (*Dense[T], error) {
	if width < 0 || height < 0 {
		return nil, denseErrorf(ctxNew, ErrInvalidSize, width, height)
	}
	o := gatherOptions(opts...)

	m := &Dense[T]{
		rows:   make([][]T, max(height, o.rowCap)),
		deflt:  deflt,
		w:      width,
		h:      height,
		colCap: max(width, o.colCap),
		growth: o.growth,
	}
	var i, j int
	for i = 0; i < height; i++ {
		row := make([]T, m.colCap)
		for j = 0; j < width; j++ {
			row[j] = deflt
		}
		m.rows[i] = row
	}

	return m, nil
}

// NewDenseZero creates a width×height matrix whose default value is the zero
// value of T (nil for pointer, slice, map and interface types). Use it when
// cells have no meaningful default and absence must be representable.
// Complexity: O(w*h).
func NewDenseZero[T any](width, height int, opts ...Option) (*Dense[T], error) {
	var zero T

	return NewDense(width, height, zero, opts...)
}

// FromSlices builds a matrix from a rectangular row-major literal.
// Width is taken from the first row; an empty input yields a 0×0 matrix.
// Values are copied, so later changes to src are not observed.
//
// Errors:
//   - ErrSizeMismatch if any row length differs from the first.
//
// Complexity: O(w*h).
func FromSlices[T any](src [][]T, deflt T, opts ...Option) (*Dense[T], error) {
	var width int
	if len(src) > 0 {
		width = len(src[0])
	}
	for i, r := range src {
		if len(r) != width {
			return nil, denseErrorf(ctxFromSlices, ErrSizeMismatch, i, len(r), width)
		}
	}
	m, err := NewDense(width, len(src), deflt, opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range src {
		copy(m.rows[i], r)
	}

	return m, nil
}

// Width returns the logical column count. Complexity: O(1).
func (m *Dense[T]) Width() int { return m.w }

// Height returns the logical row count. Complexity: O(1).
func (m *Dense[T]) Height() int { return m.h }

// Shape packs Width() and Height() into a single call for convenience.
func (m *Dense[T]) Shape() (width, height int) { return m.w, m.h }

// Default returns the value used to fill default-filled insertions.
func (m *Dense[T]) Default() T { return m.deflt }

// Cap reports the physical capacity (rows, cells per row). Capacity is never
// shrunk by deletions. Intended for diagnostics and tuning.
func (m *Dense[T]) Cap() (rowCap, colCap int) { return len(m.rows), m.colCap }

// inBounds reports whether (row,col) lies in [0,h) × [0,w).
func (m *Dense[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.h && col >= 0 && col < m.w
}

// At returns the value at (row, col) or ErrOutOfRange.
// The valid range is the half-open [0,Height()) × [0,Width()).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		var zero T

		return zero, denseErrorf(ctxAt, ErrOutOfRange, row, col)
	}

	return m.rows[row][col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// It rejects exactly the same coordinates as At, including row == Height()
// and col == Width().
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, ErrOutOfRange, row, col)
	}
	m.rows[row][col] = v

	return nil
}

// Row returns a copy of the logical cells of row.
// Complexity: O(w).
func (m *Dense[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.h {
		return nil, denseErrorf(ctxRow, ErrOutOfRange, row)
	}
	out := make([]T, m.w)
	copy(out, m.rows[row][:m.w])

	return out, nil
}

// Col returns a copy of the logical cells of column col, top to bottom.
// Complexity: O(h).
func (m *Dense[T]) Col(col int) ([]T, error) {
	if col < 0 || col >= m.w {
		return nil, denseErrorf(ctxCol, ErrOutOfRange, col)
	}
	out := make([]T, m.h)
	for i := 0; i < m.h; i++ {
		out[i] = m.rows[i][col]
	}

	return out, nil
}

// ToSlices returns a row-major copy of the logical contents.
// Complexity: O(w*h).
func (m *Dense[T]) ToSlices() [][]T {
	out := make([][]T, m.h)
	for i := 0; i < m.h; i++ {
		out[i] = make([]T, m.w)
		copy(out[i], m.rows[i][:m.w])
	}

	return out
}

// Clone returns a structurally independent copy.
// MAIN DESCRIPTION:
//   - New row buffers with capacity equal to the logical size; same default and growth factor.
//
// Behavior highlights:
//   - Cells are copied by value. If T is a pointer, slice or map type the clone
//     shares the referenced data; only the container structure is duplicated.
//   - Insert/Delete on the clone never affect the original and vice versa.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func (m *Dense[T]) Clone() *Dense[T] {
	rows := make([][]T, m.h)
	for i := 0; i < m.h; i++ {
		rows[i] = make([]T, m.w)
		copy(rows[i], m.rows[i][:m.w])
	}

	return &Dense[T]{
		rows:   rows,
		deflt:  m.deflt,
		w:      m.w,
		h:      m.h,
		colCap: m.w,
		growth: m.growth,
	}
}

// Do visits each logical cell in row-major order and calls f(row,col,v).
// Stops early when f returns false.
// Complexity: O(w*h), Space O(1).
func (m *Dense[T]) Do(f func(row, col int, v T) bool) {
	var i, j int
	for i = 0; i < m.h; i++ {
		r := m.rows[i]
		for j = 0; j < m.w; j++ {
			if !f(i, j, r[j]) {
				return
			}
		}
	}
}

// Apply replaces each logical cell with f(row,col,v) in row-major order.
// Complexity: O(w*h), Space O(1).
func (m *Dense[T]) Apply(f func(row, col int, v T) T) {
	var i, j int
	for i = 0; i < m.h; i++ {
		r := m.rows[i]
		for j = 0; j < m.w; j++ {
			r[j] = f(i, j, r[j])
		}
	}
}

// String renders one "[a, b, c]" line per row using %v.
// Intended for debugging; not for hot paths.
// Complexity: O(w*h).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.h; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.w; j++ {
			fmt.Fprintf(&b, "%v", m.rows[i][j])
			if j+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
