package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/matrix"
)

// Solve runs the revised primal simplex on
//
//	minimize cᵀx  over the system given by a (p×n) and b (p),
//
// returning the solution, an outcome Status, and an error only for
// malformed inputs (the Status is meaningful only when the error is nil).
// The solution is non-nil only when the status is Optimal; basic values
// are clamped at zero on extraction so the result is always non-negative.
func Solve(a *matrix.Dense, b, c []float64) ([]float64, Status, error) {
	if a == nil {
		return nil, Infeasible, fmt.Errorf("nil constraint matrix: %w", ErrBadProblem)
	}
	p, n := a.Rows(), a.Cols()
	if len(b) != p || len(c) != n {
		return nil, Infeasible, fmt.Errorf("rhs %d objective %d for %dx%d: %w", len(b), len(c), p, n, ErrBadProblem)
	}

	basis, nonbasis := initialBasis(a)

	for iter := 0; iter < MaxIterations; iter++ {
		// Stage 1: basis matrix and its inverse.
		bm, err := basisMatrix(a, basis)
		if err != nil {
			return nil, Singular, nil
		}
		binv, err := bm.Inverse()
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return nil, Singular, nil
			}
			return nil, Singular, err
		}

		// Stage 2: basic solution x_B = B⁻¹·b.
		xb, err := binv.MulVec(b)
		if err != nil {
			return nil, Singular, err
		}
		for _, v := range xb {
			if v < -Tolerance {
				return nil, Infeasible, nil
			}
		}

		// Stage 3: dual prices yᵀ = c_Bᵀ·B⁻¹ and entering column by the
		// most negative reduced cost r_j = c_j − yᵀ·A[:,j].
		cb := make([]float64, p)
		for i, bi := range basis {
			cb[i] = c[bi]
		}
		y := vecMat(cb, binv)

		enterSlot, best := -1, -Tolerance
		for slot, j := range nonbasis {
			col, cerr := a.Col(j)
			if cerr != nil {
				return nil, Singular, cerr
			}
			if r := c[j] - floats.Dot(y, col); r < best {
				best, enterSlot = r, slot
			}
		}
		if enterSlot < 0 {
			// Optimal: scatter the clamped basic values.
			x := make([]float64, n)
			for i, bi := range basis {
				x[bi] = math.Max(0, xb[i])
			}
			return x, Optimal, nil
		}
		entering := nonbasis[enterSlot]

		// Stage 4: direction d = B⁻¹·A[:,entering] and the ratio test.
		col, err := a.Col(entering)
		if err != nil {
			return nil, Singular, err
		}
		d, err := binv.MulVec(col)
		if err != nil {
			return nil, Singular, err
		}
		leaving, bestRatio := -1, math.Inf(1)
		for i, di := range d {
			if di > Tolerance {
				if ratio := xb[i] / di; ratio < bestRatio {
					bestRatio, leaving = ratio, i
				}
			}
		}
		if leaving < 0 {
			return nil, Unbounded, nil
		}

		// Stage 5: pivot — the outgoing column takes the slot the entering
		// column vacated.
		basis[leaving], nonbasis[enterSlot] = entering, basis[leaving]
	}

	return nil, MaxIter, nil
}

// initialBasis seeds one basic column per row: a unit column when one
// exists (entry ≈ 1 in the row, ≈ 0 elsewhere), otherwise the last still
// unassigned column as an artificial stand-in.
func initialBasis(a *matrix.Dense) (basis []int, nonbasis []int) {
	p, n := a.Rows(), a.Cols()
	basis = make([]int, p)
	used := make(map[int]bool, p)

	for i := 0; i < p; i++ {
		basis[i] = -1
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			if isUnitColumn(a, i, j) {
				basis[i] = j
				used[j] = true
				break
			}
		}
	}

	// Borrow from the tail for rows without a unit column.
	next := n - 1
	for i := 0; i < p; i++ {
		if basis[i] >= 0 {
			continue
		}
		for next >= 0 && used[next] {
			next--
		}
		if next < 0 {
			// More rows than columns: reuse the last column; the singular
			// basis is detected and reported by the main loop.
			basis[i] = n - 1
			continue
		}
		basis[i] = next
		used[next] = true
	}

	for j := 0; j < n; j++ {
		if !used[j] {
			nonbasis = append(nonbasis, j)
		}
	}

	return basis, nonbasis
}

// isUnitColumn reports whether column j of a is ≈ the i-th unit vector.
func isUnitColumn(a *matrix.Dense, i, j int) bool {
	for r := 0; r < a.Rows(); r++ {
		v, err := a.At(r, j)
		if err != nil {
			return false
		}
		want := 0.0
		if r == i {
			want = 1.0
		}
		if math.Abs(v-want) > unitTolerance {
			return false
		}
	}

	return true
}

// basisMatrix gathers the basic columns of a into a p×p matrix.
func basisMatrix(a *matrix.Dense, basis []int) (*matrix.Dense, error) {
	p := a.Rows()
	bm, err := matrix.NewDense(p, p)
	if err != nil {
		return nil, err
	}
	for k, j := range basis {
		col, err := a.Col(j)
		if err != nil {
			return nil, err
		}
		for i := 0; i < p; i++ {
			_ = bm.Set(i, k, col[i])
		}
	}

	return bm, nil
}

// vecMat computes yᵀ = vᵀ·m for a row vector v with len(v) == m.Rows.
func vecMat(v []float64, m *matrix.Dense) []float64 {
	out := make([]float64, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		col, err := m.Col(j)
		if err != nil {
			continue
		}
		out[j] = floats.Dot(v, col)
	}

	return out
}
