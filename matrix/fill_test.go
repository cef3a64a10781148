package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestFillRegionFullExtent sets every cell when the rectangle covers the matrix.
func TestFillRegionFullExtent(t *testing.T) {
	m := sequential(t, 4, 3)
	require.NoError(t, m.FillRegion(0, 0, m.Height(), m.Width(), 7))
	m.Do(func(_, _ int, v int) bool {
		require.Equal(t, 7, v)
		return true
	})
}

// TestFillRegionEmpty is a no-op for empty and inverted rectangles.
func TestFillRegionEmpty(t *testing.T) {
	m := sequential(t, 3, 3)
	want := m.ToSlices()

	require.NoError(t, m.FillRegion(1, 1, 1, 3, -1))
	require.NoError(t, m.FillRegion(3, 3, 3, 3, -1))
	require.NoError(t, m.FillRegion(2, 2, 1, 1, -1))
	requireMatrixEquals(t, want, m)
}

// TestFillRegionOutOfRange rejects any bound outside [0,dim] without writing.
func TestFillRegionOutOfRange(t *testing.T) {
	m := mustDense(t, 3, 2, 0)

	cases := []struct {
		name                   string
		row0, col0, row1, col1 int
	}{
		{"negative row0", -1, 0, 1, 1},
		{"negative col0", 0, -1, 1, 1},
		{"row1 past height", 0, 0, 3, 1},
		{"col1 past width", 0, 0, 1, 4},
		{"row0 past height", 3, 0, 3, 1},
		{"col0 past width", 0, 4, 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.FillRegion(tc.row0, tc.col0, tc.row1, tc.col1, 1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
	requireMatrixEquals(t, [][]int{{0, 0, 0}, {0, 0, 0}}, m)
}

// TestFillLineDirections draws horizontal, vertical and anti-diagonal lines.
func TestFillLineDirections(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		m := mustDense(t, 4, 3, ".")
		require.NoError(t, m.FillLine(1, 0, 0, 1, 0, 4, "x"))
		requireMatrixEquals(t, [][]string{
			{".", ".", ".", "."},
			{"x", "x", "x", "x"},
			{".", ".", ".", "."},
		}, m)
	})
	t.Run("vertical stops at end", func(t *testing.T) {
		m := mustDense(t, 3, 4, ".")
		require.NoError(t, m.FillLine(0, 2, 1, 0, 2, 0, "x"))
		requireMatrixEquals(t, [][]string{
			{".", ".", "x"},
			{".", ".", "x"},
			{".", ".", "."},
			{".", ".", "."},
		}, m)
	})
	t.Run("anti-diagonal", func(t *testing.T) {
		m := mustDense(t, 3, 3, ".")
		require.NoError(t, m.FillLine(0, 2, 1, -1, 3, 3, "x"))
		requireMatrixEquals(t, [][]string{
			{".", ".", "x"},
			{".", "x", "."},
			{"x", ".", "."},
		}, m)
	})
	t.Run("upward runs to edge", func(t *testing.T) {
		m := mustDense(t, 1, 4, ".")
		require.NoError(t, m.FillLine(3, 0, -1, 0, 4, 1, "x"))
		requireMatrixEquals(t, [][]string{{"x"}, {"x"}, {"x"}, {"x"}}, m)
	})
	t.Run("negative step ignores lower end", func(t *testing.T) {
		m := mustDense(t, 3, 3, ".")
		require.NoError(t, m.FillLine(2, 2, -1, -1, 1, 1, "x"))
		requireMatrixEquals(t, [][]string{
			{"x", ".", "."},
			{".", "x", "."},
			{".", ".", "x"},
		}, m)
	})
	t.Run("upper end still binds positive axis", func(t *testing.T) {
		m := mustDense(t, 4, 4, ".")
		require.NoError(t, m.FillLine(0, 3, 1, -1, 2, 4, "x"))
		requireMatrixEquals(t, [][]string{
			{".", ".", ".", "x"},
			{".", ".", "x", "."},
			{".", ".", ".", "."},
			{".", ".", ".", "."},
		}, m)
	})
	t.Run("stride two", func(t *testing.T) {
		m := mustDense(t, 5, 1, ".")
		require.NoError(t, m.FillLine(0, 0, 0, 2, 0, 5, "x"))
		requireMatrixEquals(t, [][]string{{"x", ".", "x", ".", "x"}}, m)
	})
	t.Run("clipped by matrix", func(t *testing.T) {
		m := mustDense(t, 2, 2, ".")
		require.NoError(t, m.FillLine(0, 0, 1, 1, 10, 10, "x"))
		requireMatrixEquals(t, [][]string{{"x", "."}, {".", "x"}}, m)
	})
	t.Run("zero step", func(t *testing.T) {
		m := mustDense(t, 2, 2, ".")
		require.NoError(t, m.FillLine(1, 0, 0, 0, 2, 2, "x"))
		requireMatrixEquals(t, [][]string{{".", "."}, {"x", "."}}, m)
	})
}

// TestFillLineStartOutOfRange rejects a start cell outside the matrix,
// including start == dimension.
func TestFillLineStartOutOfRange(t *testing.T) {
	m := mustDense(t, 3, 3, 0)
	require.ErrorIs(t, m.FillLine(3, 0, 1, 1, 3, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillLine(0, 3, 1, 1, 3, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillLine(-1, 0, 1, 1, 3, 3, 1), matrix.ErrOutOfRange)

	empty := mustDense(t, 0, 0, 0)
	require.ErrorIs(t, empty.FillLine(0, 0, 1, 1, 1, 1, 1), matrix.ErrOutOfRange)
}
