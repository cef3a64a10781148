package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/matrix"
)

// FloodFill sets v on every cell connected to (row, col) through cells that
// are same as the starting value, and returns how many cells were written.
// Cells are compared against the original starting value, so v may itself
// satisfy same without looping.
//
// Errors:
//   - ErrNilMatrix, ErrNilPredicate, ErrConnectivity.
//   - matrix.ErrOutOfRange (wrapped) when (row, col) is outside the matrix;
//     nothing is written in that case.
//
// Time: O(R·d) for a region of R cells. Memory: O(R).
func FloodFill[T any](m *matrix.Dense[T], row, col int, v T, same func(a, b T) bool, conn Connectivity) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if same == nil {
		return 0, ErrNilPredicate
	}
	offsets, err := Offsets(conn)
	if err != nil {
		return 0, err
	}
	target, err := m.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("gridgraph: FloodFill: %w", err)
	}

	w, h := m.Shape()
	seen := make([]bool, w*h)
	queue := []Cell{{Row: row, Col: col}}
	seen[row*w+col] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			n := Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
			if n.Row < 0 || n.Row >= h || n.Col < 0 || n.Col >= w {
				continue
			}
			if seen[n.Row*w+n.Col] {
				continue
			}
			nv, err := m.At(n.Row, n.Col)
			if err != nil {
				return 0, err
			}
			if same(target, nv) {
				seen[n.Row*w+n.Col] = true
				queue = append(queue, n)
			}
		}
	}

	// Write only after the region is known so comparisons see original values.
	for _, c := range queue {
		if err := m.Set(c.Row, c.Col, v); err != nil {
			return 0, err
		}
	}

	return len(queue), nil
}
