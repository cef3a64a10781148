// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests.
//   • Compare a matrix against a literal [][]T using only the public read
//     surface (At, Width, Height), reporting the first mismatching cell.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// smile is the default value used throughout the scenario tests.
const smile = ":)"

// mustDense ALLOCATES a width×height *Dense filled with deflt or fails the test.
func mustDense[T any](tb testing.TB, width, height int, deflt T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense(width, height, deflt, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", width, height, err)
	}

	return m
}

// mustFromSlices BUILDS a *Dense from a rectangular literal or fails the test.
func mustFromSlices[T any](tb testing.TB, src [][]T, deflt T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromSlices(src, deflt)
	if err != nil {
		tb.Fatalf("FromSlices: %v", err)
	}

	return m
}

// requireMatrixEquals ASSERTS that m has the shape of want and equal cells.
// Implementation:
//   - Stage 1: compare Height() with len(want) and Width() with each row length.
//   - Stage 2: walk rows then columns; fail on the first mismatch with its coordinates.
func requireMatrixEquals[T comparable](t *testing.T, want [][]T, m *matrix.Dense[T], msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, len(want), m.Height(), "height: %v", msgAndArgs)
	for i, row := range want {
		require.Equal(t, len(row), m.Width(), "width of row %d: %v", i, msgAndArgs)
		for j, exp := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			if got != exp {
				t.Fatalf("cell (%d,%d): want %v, got %v %v\n%s", i, j, exp, got, msgAndArgs, m)
			}
		}
	}
}

// sequential BUILDS a width×height int matrix with cell (i,j) = i*width + j.
func sequential(tb testing.TB, width, height int) *matrix.Dense[int] {
	tb.Helper()
	m := mustDense(tb, width, height, 0)
	m.Apply(func(i, j, _ int) int { return i*width + j })

	return m
}
