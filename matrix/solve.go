package matrix

import (
	"fmt"
	"math"
)

// Numeric policy constants for inversion and least squares.
const (
	// PivotTolerance is the smallest pivot magnitude Gauss–Jordan
	// elimination accepts before declaring the matrix singular.
	PivotTolerance = 1e-10

	// Ridge is the Tikhonov term added to the diagonal of AᵀA in Solve.
	// It keeps near-rank-deficient design matrices (coincident knots,
	// near-collinear abscissae) solvable.
	Ridge = 1e-10
)

// Inverse computes m⁻¹ by Gauss–Jordan elimination with partial pivoting
// on the augmented system (A | I).
//
// Stage 1: validate square shape and build the augmented n×2n work matrix.
// Stage 2: for each column, swap in the largest-magnitude pivot row; a best
// pivot below PivotTolerance yields ErrSingular.
// Stage 3: normalize the pivot row and eliminate the column everywhere else.
//
// Complexity: O(n^3), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r

	// Augmented (A | I), row-major with stride 2n.
	w := make([]float64, n*2*n)
	for i := 0; i < n; i++ {
		copy(w[i*2*n:i*2*n+n], m.data[i*n:(i+1)*n])
		w[i*2*n+n+i] = 1
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: the largest |w[row][col]| for row >= col.
		pivot := col
		best := math.Abs(w[col*2*n+col])
		for row := col + 1; row < n; row++ {
			if a := math.Abs(w[row*2*n+col]); a > best {
				best, pivot = a, row
			}
		}
		if best < PivotTolerance {
			return nil, ErrSingular
		}
		if pivot != col {
			for j := 0; j < 2*n; j++ {
				w[col*2*n+j], w[pivot*2*n+j] = w[pivot*2*n+j], w[col*2*n+j]
			}
		}

		// Normalize the pivot row.
		pv := w[col*2*n+col]
		for j := 0; j < 2*n; j++ {
			w[col*2*n+j] /= pv
		}

		// Eliminate the column from all other rows.
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			f := w[row*2*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				w[row*2*n+j] -= f * w[col*2*n+j]
			}
		}
	}

	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], w[i*2*n+n:(i+1)*2*n])
	}

	return inv, nil
}

// Solve returns the regularized least-squares solution of m·x ≅ b:
// it forms M = AᵀA + Ridge·I and returns M⁻¹·Aᵀb.
//
// m may be rectangular (rows ≥ or < cols); the result has m.Cols elements.
// ErrSingular is returned only when the regularized normal matrix is still
// singular, and ErrDimensionMismatch when len(b) != m.Rows.
//
// Complexity: O(r*c^2 + c^3).
func (m *Dense) Solve(b []float64) ([]float64, error) {
	if len(b) != m.r {
		return nil, fmt.Errorf("rhs length %d, want %d: %w", len(b), m.r, ErrDimensionMismatch)
	}

	at := m.Transpose()
	nm, err := at.Mul(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nm.r; i++ {
		nm.data[i*nm.c+i] += Ridge
	}

	inv, err := nm.Inverse()
	if err != nil {
		return nil, fmt.Errorf("regularized normal equations: %w", err)
	}

	atb, err := at.MulVec(b)
	if err != nil {
		return nil, err
	}

	return inv.MulVec(atb)
}
