package lsq

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/matrix"
)

// ldpEps guards the feasibility divisor 1 − hᵀu against cancellation.
const ldpEps = 1e-12

// LDP solves the least-distance problem min ‖x‖₂ subject to G·x ≥ h.
//
// One NNLS solve on the augmented matrix E = [Gᵀ; hᵀ] with target
// f = (0, …, 0, 1) yields a dual vector u; the primal solution is read off
// the NNLS residual r = E·u − f as x = r[:n] / (−r[n]). A vanishing
// residual norm, a divisor 1 − hᵀu below ldpEps, or a candidate x that
// misses a row of G·x ≥ h by more than a relative 1e-8 is reported as
// ErrIncompatible.
func LDP(g *matrix.Dense, h []float64) ([]float64, error) {
	if g == nil || len(h) != g.Rows() {
		return nil, ErrBadInput
	}
	p, n := g.Rows(), g.Cols()

	// E = [Gᵀ; hᵀ]: column j carries constraint row j and its bound.
	e, err := matrix.NewDense(n+1, p)
	if err != nil {
		return nil, err
	}
	for j := 0; j < p; j++ {
		row, rerr := g.Row(j)
		if rerr != nil {
			return nil, rerr
		}
		for i := 0; i < n; i++ {
			_ = e.Set(i, j, row[i])
		}
		_ = e.Set(n, j, h[j])
	}
	f := make([]float64, n+1)
	f[n] = 1

	u, rnorm, err := NNLS(e, f, 0)
	if err != nil {
		return nil, err
	}
	if rnorm <= 0 {
		return nil, ErrIncompatible
	}
	fac := 1 - floats.Dot(h, u)
	if math.IsNaN(fac) || fac < ldpEps {
		return nil, ErrIncompatible
	}

	// x = (E·u − f)[:n] / fac.
	eu, err := e.MulVec(u)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = eu[i] / fac
	}

	// The ridge term of the NNLS sub-solves keeps the residual of an
	// incompatible system from vanishing exactly, so the candidate is
	// checked against every row as well.
	gx, err := g.MulVec(x)
	if err != nil {
		return nil, err
	}
	for j, v := range gx {
		if v < h[j]-1e-8*(1+math.Abs(h[j])) {
			return nil, ErrIncompatible
		}
	}

	return x, nil
}
