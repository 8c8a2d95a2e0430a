package matrix

import (
	"fmt"
	"math"
)

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The receiver is never mutated.
func (m *Dense) Scale(alpha float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out
}

// Mul performs standard matrix multiplication C = m × b into a fresh Dense.
// Inner dimensions must agree (m.Cols == b.Rows).
//
// Fixed i→k→j loop order over the flat backing slices; zero entries of the
// left operand are skipped.
// Complexity: O(r*n*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if b == nil || m.c != b.r {
		return nil, fmt.Errorf("%dx%d x %v: %w", m.r, m.c, shapeOf(b), ErrDimensionMismatch)
	}
	out, err := NewDense(m.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		rowA := i * m.c
		rowC := i * b.c
		for k := 0; k < m.c; k++ {
			av := m.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[rowC+j] += av * b.data[rowB+j]
			}
		}
	}

	return out, nil
}

// MulVec computes y = m * x for a column vector x with len(x) == m.Cols.
// Complexity: O(r*c), Space O(r).
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("vector length %d, want %d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		acc := 0.0
		for j, xv := range x {
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// MaxAbs returns the largest absolute element value, 0 for the zero matrix.
func (m *Dense) MaxAbs() float64 {
	max := 0.0
	for _, v := range m.data {
		if a := math.Abs(v); a > max {
			max = a
		}
	}

	return max
}

// shapeOf formats b's shape for error messages, tolerating nil.
func shapeOf(b *Dense) string {
	if b == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", b.r, b.c)
}
