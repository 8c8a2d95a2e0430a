package constraint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cobs/bspline"
	"github.com/katalvlaran/cobs/matrix"
)

// GridSize is the number of equally spaced interior samples used to
// discretize derivative-sign constraints. It is a hyperparameter, not a
// natural law: 100 points are sufficient for order ≤ 4 splines over a
// smoothly spaced knot vector.
const GridSize = 100

// System is a stacked linear-inequality system A·c ≤ b over the spline
// coefficients. An empty system (no constraints) has a nil A and no rows.
type System struct {
	A *matrix.Dense
	B []float64
}

// Empty reports whether the system carries no rows.
func (s *System) Empty() bool { return s == nil || s.A == nil }

// Len returns the number of stacked rows.
func (s *System) Len() int {
	if s.Empty() {
		return 0
	}

	return s.A.Rows()
}

// builder accumulates inequality rows as sparse triplets before
// materializing the stacked system.
type builder struct {
	vals       []float64
	ri, ci     []int
	rhs        []float64
	cols, rows int
}

// push appends one row in A·c ≤ b orientation, emitting only entries with
// magnitude above the build threshold.
func (bl *builder) push(row []float64, rhs float64) {
	for j, v := range row {
		if math.Abs(v) > bspline.EmitThreshold {
			bl.vals = append(bl.vals, v)
			bl.ri = append(bl.ri, bl.rows)
			bl.ci = append(bl.ci, j)
		}
	}
	bl.rhs = append(bl.rhs, rhs)
	bl.rows++
}

// pushEquality appends row·c = rhs as two opposed inequalities.
func (bl *builder) pushEquality(row []float64, rhs float64) {
	bl.push(row, rhs)
	neg := make([]float64, len(row))
	for j, v := range row {
		neg[j] = -v
	}
	bl.push(neg, -rhs)
}

// negated returns −row.
func negated(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = -v
	}

	return out
}

// Build stacks the row blocks of all constraints into one system over the
// basis coefficients. The spline domain [xMin, xMax] supplies the sampling
// grid for derivative-sign constraints and the endpoints for periodicity.
//
// Empty input yields an empty System. Unknown types and pointwise operators
// fail with ErrUnsupportedConstraint / ErrUnsupportedOperator.
func Build(basis *bspline.Basis, xMin, xMax float64, cons []Constraint) (*System, error) {
	if basis == nil {
		return nil, ErrNilBasis
	}
	if len(cons) == 0 {
		return &System{}, nil
	}

	bl := &builder{cols: basis.NumCoefficients()}
	for i, c := range cons {
		if err := bl.add(basis, xMin, xMax, c); err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, c.Type, err)
		}
	}
	if bl.rows == 0 {
		return &System{}, nil
	}

	a, err := matrix.NewFromTriplets(bl.vals, bl.ri, bl.ci, bl.rows, bl.cols)
	if err != nil {
		return nil, err
	}

	return &System{A: a, B: bl.rhs}, nil
}

// add appends the row block of a single constraint.
func (bl *builder) add(basis *bspline.Basis, xMin, xMax float64, c Constraint) error {
	switch c.Type {
	case Monotone:
		// ±ŝ′(ξ) ≥ 0 on the interior grid, stored as ∓B′(ξ)·c ≤ 0.
		for _, x := range interiorGrid(xMin, xMax) {
			row := basis.EvaluateDerivative(x)
			if c.Increasing {
				row = negated(row)
			}
			bl.push(row, 0)
		}

	case Convex, Concave:
		for _, x := range interiorGrid(xMin, xMax) {
			row := basis.EvaluateSecondDerivative(x)
			if c.Type == Convex {
				row = negated(row)
			}
			bl.push(row, 0)
		}

	case Periodic:
		// Value and slope agree at the domain ends.
		lo, hi := basis.Evaluate(xMin), basis.Evaluate(xMax)
		diff := make([]float64, len(lo))
		for j := range lo {
			diff[j] = lo[j] - hi[j]
		}
		bl.pushEquality(diff, 0)

		lo, hi = basis.EvaluateDerivative(xMin), basis.EvaluateDerivative(xMax)
		for j := range lo {
			diff[j] = lo[j] - hi[j]
		}
		bl.pushEquality(diff, 0)

	case Pointwise:
		row := basis.Evaluate(c.X)
		switch c.Op {
		case OpEqual:
			bl.pushEquality(row, c.Y)
		case OpLessEqual:
			bl.push(row, c.Y)
		case OpGreaterEqual:
			bl.push(negated(row), -c.Y)
		default:
			return fmt.Errorf("%q: %w", c.Op, ErrUnsupportedOperator)
		}

	default:
		return ErrUnsupportedConstraint
	}

	return nil
}

// interiorGrid returns GridSize equally spaced points strictly inside
// [lo, hi].
func interiorGrid(lo, hi float64) []float64 {
	out := make([]float64, GridSize)
	step := (hi - lo) / float64(GridSize+1)
	for i := range out {
		out[i] = lo + step*float64(i+1)
	}

	return out
}
