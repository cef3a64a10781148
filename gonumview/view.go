// SPDX-License-Identifier: MIT

package gonumview

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/matrix"
	"gonum.org/v1/gonum/mat"
)

// View is a read-only mat.Matrix backed by a *matrix.Dense[float64].
// It holds no copy: Set on the Dense is visible through the view, and
// structural edits change what Dims reports.
type View struct {
	m *matrix.Dense[float64]
}

// Compile-time assertion: View satisfies gonum's Matrix interface.
var _ mat.Matrix = View{}

// NewView wraps m. Returns matrix.ErrNilMatrix when m is nil.
func NewView(m *matrix.Dense[float64]) (View, error) {
	if m == nil {
		return View{}, fmt.Errorf("gonumview: NewView: %w", matrix.ErrNilMatrix)
	}

	return View{m: m}, nil
}

// Dims returns (rows, cols) = (Height(), Width()).
func (v View) Dims() (r, c int) {
	return v.m.Height(), v.m.Width()
}

// At returns the value at row i, column j. Following gonum's convention it
// panics with mat.ErrIndexOutOfRange on invalid indices.
func (v View) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns the implicit transpose of the view.
func (v View) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// ToDense copies m into a new *mat.Dense.
// gonum has no zero-length Dense, so an empty m yields matrix.ErrInvalidSize.
// Complexity: O(w*h).
func ToDense(m *matrix.Dense[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumview: ToDense: %w", matrix.ErrNilMatrix)
	}
	w, h := m.Shape()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("gonumview: ToDense(%dx%d): %w", h, w, matrix.ErrInvalidSize)
	}

	data := make([]float64, 0, w*h)
	m.Do(func(_, _ int, x float64) bool {
		data = append(data, x)
		return true
	})

	return mat.NewDense(h, w, data), nil
}

// FromMatrix copies any mat.Matrix into a new Dense whose default value is 0.
// Complexity: O(r*c).
func FromMatrix(a mat.Matrix, opts ...matrix.Option) (*matrix.Dense[float64], error) {
	if a == nil {
		return nil, fmt.Errorf("gonumview: FromMatrix: %w", matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := matrix.NewDense(c, r, 0.0, opts...)
	if err != nil {
		return nil, err
	}
	m.Apply(func(i, j int, _ float64) float64 { return a.At(i, j) })

	return m, nil
}
