package matrix

import "math"

// Cholesky computes the factor L of A = L·Lᵀ for a symmetric positive
// definite receiver and returns it as a lower-triangular Dense.
// A non-positive or non-finite pivot yields ErrNotPositiveDefinite.
//
// Only the lower triangle of the receiver is read; symmetry is assumed,
// not checked.
// Complexity: O(n^3).
func (m *Dense) Cholesky() (*Dense, error) {
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	n := m.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := m.data[i*n+j]
			for k := 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
					return nil, ErrNotPositiveDefinite
				}
				l.data[i*n+j] = math.Sqrt(sum)
			} else {
				l.data[i*n+j] = sum / l.data[j*n+j]
			}
		}
	}

	return l, nil
}

// ForwardSolve solves L·y = b for a lower-triangular receiver.
// A zero diagonal entry yields ErrSingular.
func (m *Dense) ForwardSolve(b []float64) ([]float64, error) {
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	if len(b) != m.r {
		return nil, ErrDimensionMismatch
	}
	n := m.r
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= m.data[i*n+j] * y[j]
		}
		diag := m.data[i*n+i]
		if diag == 0 {
			return nil, ErrSingular
		}
		y[i] = sum / diag
	}

	return y, nil
}

// BackSolveTransposed solves Lᵀ·x = y for a lower-triangular receiver,
// reading column i below the diagonal as row i of Lᵀ.
func (m *Dense) BackSolveTransposed(y []float64) ([]float64, error) {
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	if len(y) != m.r {
		return nil, ErrDimensionMismatch
	}
	n := m.r
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= m.data[j*n+i] * x[j]
		}
		diag := m.data[i*n+i]
		if diag == 0 {
			return nil, ErrSingular
		}
		x[i] = sum / diag
	}

	return x, nil
}
