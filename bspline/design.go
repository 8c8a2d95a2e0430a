package bspline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cobs/matrix"
)

// EmitThreshold is the smallest magnitude design-matrix assembly emits
// through the sparse-triplet interface; smaller entries stay implicit zeros.
const EmitThreshold = 1e-10

// Evaluate returns the dense basis row (B₀(x), …, B_{N−1}(x)).
// At most order+1 entries are non-zero.
func (b *Basis) Evaluate(x float64) []float64 {
	span := b.FindSpan(x)

	return b.scatter(span, b.basisFunctions(span, x))
}

// EvaluateDerivative returns the dense row of first derivatives at x.
func (b *Basis) EvaluateDerivative(x float64) []float64 {
	span := b.FindSpan(x)

	return b.scatter(span, b.derivativeBasisFunctions(span, x, 1))
}

// EvaluateSecondDerivative returns the dense row of second derivatives at x.
func (b *Basis) EvaluateSecondDerivative(x float64) []float64 {
	span := b.FindSpan(x)

	return b.scatter(span, b.derivativeBasisFunctions(span, x, 2))
}

// scatter places the order+1 active values for the given span into a dense
// length-N row. active[r] belongs to basis function span−order+r; indices
// outside [0, N) are dropped, which can only occur for abscissae outside
// the active interval.
func (b *Basis) scatter(span int, active []float64) []float64 {
	n := b.NumCoefficients()
	out := make([]float64, n)
	for r, v := range active {
		idx := span - b.order + r
		if idx >= 0 && idx < n {
			out[idx] = v
		}
	}

	return out
}

// DesignMatrix assembles the m×N design matrix whose row i is the basis
// row at xs[i]. Entries are emitted as sparse triplets and materialized
// dense; per row at most order+1 entries exceed EmitThreshold.
func (b *Basis) DesignMatrix(xs []float64) (*matrix.Dense, error) {
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}
	n := b.NumCoefficients()

	var vals []float64
	var ri, ci []int
	for i, x := range xs {
		row := b.Evaluate(x)
		for j, v := range row {
			if math.Abs(v) > EmitThreshold {
				vals = append(vals, v)
				ri = append(ri, i)
				ci = append(ci, j)
			}
		}
	}

	return matrix.NewFromTriplets(vals, ri, ci, len(xs), n)
}

// DerivativeMatrix assembles derivative rows of the given order d (1 or 2)
// over xs augmented with the midpoints of consecutive abscissae, producing
// 2·len(xs)−1 rows: even row 2i is xs[i], odd row 2i+1 the midpoint of
// xs[i] and xs[i+1].
//
// The midpoint interleaving is part of the contract: callers expecting row
// i to correspond to xs[i] must account for it. The constraint path samples
// its own grid and does not use this matrix.
func (b *Basis) DerivativeMatrix(xs []float64, d int) (*matrix.Dense, error) {
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}
	if d < 1 || d > 2 {
		return nil, fmt.Errorf("derivative order %d: %w", d, ErrBadDerivative)
	}

	aug := make([]float64, 0, 2*len(xs)-1)
	for i, x := range xs {
		aug = append(aug, x)
		if i+1 < len(xs) {
			aug = append(aug, (x+xs[i+1])/2)
		}
	}

	n := b.NumCoefficients()
	var vals []float64
	var ri, ci []int
	for i, x := range aug {
		span := b.FindSpan(x)
		row := b.scatter(span, b.derivativeBasisFunctions(span, x, d))
		for j, v := range row {
			if math.Abs(v) > EmitThreshold {
				vals = append(vals, v)
				ri = append(ri, i)
				ci = append(ci, j)
			}
		}
	}

	return matrix.NewFromTriplets(vals, ri, ci, len(aug), n)
}
