package linalg

import (
	"fmt"

	"github.com/san-kum/numlab/internal/numeric"
)

// Matrix is a dense row-major matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zeroed rows x cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix: %w", numeric.ErrDimensionMismatch)
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(row), cols, numeric.ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Row returns row i as a copy.
func (m *Matrix) Row(i int) []float64 {
	return numeric.CloneVec(m.data[i*m.cols : (i+1)*m.cols])
}

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// MulVec returns the product m*x.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("vector length %d, want %d: %w",
			len(x), m.cols, numeric.ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		y[i] = numeric.Dot(m.data[i*m.cols:(i+1)*m.cols], x)
	}
	return y, nil
}

// Augmented builds the n x (n+1) augmented matrix [a | b].
func Augmented(a *Matrix, b []float64) (*Matrix, error) {
	if a.rows != a.cols {
		return nil, fmt.Errorf("coefficient matrix is %dx%d, want square: %w",
			a.rows, a.cols, numeric.ErrDimensionMismatch)
	}
	if len(b) != a.rows {
		return nil, fmt.Errorf("rhs length %d, want %d: %w",
			len(b), a.rows, numeric.ErrDimensionMismatch)
	}
	aug := New(a.rows, a.cols+1)
	for i := 0; i < a.rows; i++ {
		copy(aug.data[i*aug.cols:], a.data[i*a.cols:(i+1)*a.cols])
		aug.data[i*aug.cols+a.cols] = b[i]
	}
	return aug, nil
}
