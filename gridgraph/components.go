package gridgraph

import "github.com/katalvlaran/lvgrid/matrix"

// ConnectedComponents finds all contiguous regions of cells for which keep
// returns true, according to conn.
// Components are ordered by their first cell in row-major order; cells within
// a component are in BFS order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the mask, visited flags and output.
func ConnectedComponents[T any](m *matrix.Dense[T], keep func(T) bool, conn Connectivity) ([][]Cell, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if keep == nil {
		return nil, ErrNilPredicate
	}
	offsets, err := Offsets(conn)
	if err != nil {
		return nil, err
	}

	w, h := m.Shape()
	land := make([]bool, w*h)
	m.Do(func(row, col int, v T) bool {
		land[row*w+col] = keep(v)
		return true
	})

	seen := make([]bool, w*h)
	var comps [][]Cell
	for i0 := range land {
		if !land[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/w, u%w
			comp = append(comp, Cell{Row: ur, Col: uc})
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if vr < 0 || vr >= h || vc < 0 || vc >= w {
					continue
				}
				vi := vr*w + vc
				if land[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
