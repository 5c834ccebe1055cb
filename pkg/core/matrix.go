package core

import (
	"github.com/pkg/errors"
)

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromColumns builds a matrix whose j-th column is cols[j].
func FromColumns(cols [][]float64) (*Matrix, error) {
	if len(cols) == 0 {
		return &Matrix{}, nil
	}
	r := len(cols[0])
	m := NewMatrix(r, len(cols))
	for j, col := range cols {
		if len(col) != r {
			return nil, errors.Errorf("column %d has %d values, expected %d", j, len(col), r)
		}
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Rows returns the matrix as a nested slice.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.R)
	for i := range m.R {
		out[i] = make([]float64, m.C)
		copy(out[i], m.Data[i*m.C:(i+1)*m.C])
	}
	return out
}
