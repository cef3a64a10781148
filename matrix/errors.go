// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels wrapped with call-site context
// and tests MUST check them via errors.Is. No method panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods wrap with denseErrorf so the message
// carries the method and its arguments; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests, see TestRangeCheckedBeforeSize):
// index/range -> size mismatch.

var (
	// ErrInvalidSize is returned when a requested width or height is negative.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrOutOfRange indicates that a row, column, rectangle or line argument
	// lies outside the currently valid logical range.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates that a caller-supplied row or column of values
	// does not match the current width or height.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRow        = "Row"
	ctxCol        = "Col"
	ctxInsertRow  = "InsertRow"
	ctxInsertCol  = "InsertCol"
	ctxDeleteRow  = "DeleteRow"
	ctxDeleteCol  = "DeleteCol"
	ctxFillRegion = "FillRegion"
	ctxFillLine   = "FillLine"
	ctxNew        = "NewDense"
	ctxFromSlices = "FromSlices"
)

// denseErrorf wraps a sentinel with a uniform "Dense.<method>(args): " prefix.
// The sentinel is preserved via %w.
func denseErrorf(method string, err error, args ...int) error {
	return fmt.Errorf("Dense.%s%s: %w", method, formatArgs(args), err)
}

// formatArgs renders integer call arguments as "(a,b,c)".
func formatArgs(args []int) string {
	b := make([]byte, 0, 2+4*len(args))
	b = append(b, '(')
	for i, a := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(a), 10)
	}
	b = append(b, ')')

	return string(b)
}
