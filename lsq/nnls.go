package lsq

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/matrix"
)

// nnlsTolerance is the dual-value threshold deciding when no constraint is
// worth relaxing any further.
const nnlsTolerance = 1e-10

// NNLS solves min ‖E·u − f‖₂ subject to u ≥ 0 by the Lawson–Hanson
// active-set method and returns the solution together with the residual
// norm ‖f − E·u‖₂.
//
// The passive set ℙ holds indices free to be positive, the active set its
// complement (pinned at zero). Each outer step frees the index with the
// largest dual value w = Eᵀ(f − E·u); the inner loop repairs any passive
// coordinate the unconstrained sub-solve drives non-positive.
//
// maxIter ≤ 0 selects the customary 3·cols budget.
func NNLS(e *matrix.Dense, f []float64, maxIter int) ([]float64, float64, error) {
	if e == nil || len(f) != e.Rows() {
		return nil, math.NaN(), ErrBadInput
	}
	m, k := e.Rows(), e.Cols()
	if maxIter <= 0 {
		maxIter = 3 * k
	}

	u := make([]float64, k)
	passive := make([]bool, k)

	residual := func() []float64 {
		eu, _ := e.MulVec(u)
		r := make([]float64, m)
		floats.SubTo(r, f, eu)
		return r
	}

	// Dual vector w = Eᵀr over the active set.
	dual := func(r []float64) []float64 {
		w := make([]float64, k)
		for j := 0; j < k; j++ {
			if passive[j] {
				continue
			}
			col, _ := e.Col(j)
			w[j] = floats.Dot(col, r)
		}
		return w
	}

	iter := 0
	for {
		r := residual()
		w := dual(r)

		// Free the most-violated active index; stop when none improves.
		best, bestJ := nnlsTolerance, -1
		for j := 0; j < k; j++ {
			if !passive[j] && w[j] > best {
				best, bestJ = w[j], j
			}
		}
		if bestJ < 0 {
			return u, floats.Norm(r, 2), nil
		}
		passive[bestJ] = true

		for {
			if iter++; iter > maxIter {
				return u, floats.Norm(residual(), 2), ErrExceededIterations
			}

			s, idx, err := passiveSolve(e, f, passive)
			if err != nil {
				return nil, math.NaN(), err
			}

			// All-positive sub-solution: accept and go pick the next index.
			minS := math.Inf(1)
			for _, v := range s {
				if v < minS {
					minS = v
				}
			}
			if minS > 0 {
				for i := range u {
					u[i] = 0
				}
				for pos, j := range idx {
					u[j] = s[pos]
				}
				break
			}

			// Interpolate toward s just far enough to pin a violator.
			alpha := math.Inf(1)
			for pos, j := range idx {
				if s[pos] <= 0 {
					if t := u[j] / (u[j] - s[pos]); t < alpha {
						alpha = t
					}
				}
			}
			for pos, j := range idx {
				u[j] += alpha * (s[pos] - u[j])
			}
			for _, j := range idx {
				if u[j] <= nnlsTolerance {
					u[j] = 0
					passive[j] = false
				}
			}
		}
	}
}

// passiveSolve solves the unconstrained least-squares subproblem over the
// passive columns and returns the sub-solution with its column indices.
func passiveSolve(e *matrix.Dense, f []float64, passive []bool) ([]float64, []int, error) {
	var idx []int
	for j, p := range passive {
		if p {
			idx = append(idx, j)
		}
	}
	if len(idx) == 0 {
		return nil, nil, nil
	}

	m := e.Rows()
	sub, err := matrix.NewDense(m, len(idx))
	if err != nil {
		return nil, nil, err
	}
	for pos, j := range idx {
		col, cerr := e.Col(j)
		if cerr != nil {
			return nil, nil, cerr
		}
		for i := 0; i < m; i++ {
			_ = sub.Set(i, pos, col[i])
		}
	}

	s, err := sub.Solve(f)
	if err != nil {
		return nil, nil, err
	}

	return s, idx, nil
}
