// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/lvgrid.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one matrix cell by row and column.
type Cell struct {
	Row, Col int
}

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the (drow, dcol) neighbor deltas for conn, clockwise from
// north. The returned slice is shared; do not modify it.
// Returns ErrConnectivity for unknown values.
func Offsets(conn Connectivity) ([][2]int, error) {
	switch conn {
	case Conn4:
		return offsets4, nil
	case Conn8:
		return offsets8, nil
	default:
		return nil, ErrConnectivity
	}
}
