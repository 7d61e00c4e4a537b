package sim

import "math"

// Matrix is a dense grid of sampled values with one row per time step and
// one column per path. A simulation over n steps produces n+1 rows; row 0
// holds the initial condition for every path.
type Matrix [][]float64

// NewMatrix allocates a zeroed rows×cols matrix backed by a single
// contiguous array, so filling it row by row walks memory in order.
func NewMatrix(rows, cols int) Matrix {
	backing := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Col returns a copy of column j: the trajectory of a single path over time.
func (m Matrix) Col(j int) []float64 {
	c := make([]float64, len(m))
	for i := range m {
		c[i] = m[i][j]
	}
	return c
}

func (m Matrix) Clone() Matrix {
	c := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		copy(c[i], m[i])
	}
	return c
}

func (m Matrix) IsValid() bool {
	for i := range m {
		for _, v := range m[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
