package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvgrid/matrix"
)

var (
	// ErrNilMatrix indicates a nil *matrix.Dense was passed in.
	// It is the matrix package sentinel, so errors.Is matches either name.
	ErrNilMatrix = matrix.ErrNilMatrix
	// ErrNilPredicate indicates a nil keep/same callback.
	ErrNilPredicate = errors.New("gridgraph: predicate must not be nil")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("gridgraph: unknown connectivity")
)
