package lsq

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/matrix"
)

// LSI solves the inequality-constrained least-squares problem
//
//	min ‖D·c − y‖₂  subject to  A·c ≤ b,
//
// by whitening the quadratic term and delegating to LDP.
//
// With L·Lᵀ the Cholesky factor of DᵀD (ridge-regularized by Solve's
// policy so rank-deficient designs stay factorable) and g = L⁻¹·Dᵀy,
// the substitution w = Lᵀc − g turns the objective into min ‖w‖₂ and the
// constraints into (−A·L⁻ᵀ)·w ≥ A·L⁻ᵀ·g − b. The solution maps back as
// c = L⁻ᵀ(w + g).
func LSI(d *matrix.Dense, y []float64, a *matrix.Dense, b []float64) ([]float64, error) {
	if d == nil || a == nil || len(y) != d.Rows() || len(b) != a.Rows() || a.Cols() != d.Cols() {
		return nil, ErrBadInput
	}
	n := d.Cols()

	// DᵀD + ridge on the diagonal, then its Cholesky factor.
	dt := d.Transpose()
	nm, err := dt.Mul(d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, _ := nm.At(i, i)
		_ = nm.Set(i, i, v+matrix.Ridge)
	}
	l, err := nm.Cholesky()
	if err != nil {
		return nil, err
	}

	// g = L⁻¹·Dᵀy.
	dty, err := dt.MulVec(y)
	if err != nil {
		return nil, err
	}
	g, err := l.ForwardSolve(dty)
	if err != nil {
		return nil, err
	}

	// T = A·L⁻ᵀ, built row-wise: each row of T is the forward substitution
	// of the matching row of A through L.
	t, err := matrix.NewDense(a.Rows(), n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		row, rerr := a.Row(i)
		if rerr != nil {
			return nil, rerr
		}
		// Row i of A·L⁻ᵀ is the solution of L·z = Aᵢ (since (L⁻ᵀ)ᵀ = L⁻¹).
		z, serr := l.ForwardSolve(row)
		if serr != nil {
			return nil, serr
		}
		for j := 0; j < n; j++ {
			_ = t.Set(i, j, z[j])
		}
	}

	// LDP in w: (−T)·w ≥ T·g − b.
	tg, err := t.MulVec(g)
	if err != nil {
		return nil, err
	}
	h := make([]float64, len(b))
	floats.SubTo(h, tg, b)
	w, err := LDP(t.Scale(-1), h)
	if err != nil {
		return nil, err
	}

	// c = L⁻ᵀ(w + g).
	floats.Add(w, g)
	c, err := l.BackSolveTransposed(w)
	if err != nil {
		return nil, err
	}

	return c, nil
}
