package cobs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/bspline"
	"github.com/katalvlaran/cobs/constraint"
	"github.com/katalvlaran/cobs/lsq"
	"github.com/katalvlaran/cobs/matrix"
	"github.com/katalvlaran/cobs/simplex"
)

// constraintSlack is the tolerance a linear-program solution must satisfy
// the stacked constraint rows within before the fit accepts it.
const constraintSlack = 1e-8

// Fit fits a regression B-spline of the configured order to the samples
// (x[i], y[i]) and returns a self-contained Result.
//
// Path selection:
//  1. Validate inputs, resolve or generate the knot vector, build the
//     design matrix.
//  2. With constraints, stack their rows and run the revised simplex with
//     a uniform ones objective. An optimal vertex that actually satisfies
//     the rows is accepted as the coefficient vector.
//  3. Otherwise the unconstrained least-squares solution is refined by the
//     inequality-constrained stage in package lsq, so the shape
//     requirements still hold.
//  4. If every constrained stage fails (incompatible rows included), the
//     fit silently falls back to unconstrained regularized least squares —
//     the caller only observes a finished fit.
//
// A nil opts fits with DefaultOptions.
func Fit(x, y []float64, opts *Options) (*Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	order := o.Order
	if order == 0 {
		order = DefaultOrder
	}

	switch {
	case order < 1:
		return nil, fmt.Errorf("order %d: %w", o.Order, ErrInvalidInput)
	case len(x) != len(y):
		return nil, fmt.Errorf("%d abscissae, %d ordinates: %w", len(x), len(y), ErrInvalidInput)
	case len(x) < 2:
		return nil, fmt.Errorf("%d data points: %w", len(x), ErrInvalidInput)
	case o.Tau != 0 && (o.Tau <= 0 || o.Tau >= 1):
		return nil, fmt.Errorf("tau %v: %w", o.Tau, ErrInvalidInput)
	}

	knots, err := resolveKnots(x, order, o.Knots)
	if err != nil {
		return nil, err
	}

	basis, err := bspline.New(knots, order)
	if err != nil {
		// Only reachable for user-supplied knots; generation always
		// produces a valid clamped vector.
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidKnots)
	}

	design, err := basis.DesignMatrix(x)
	if err != nil {
		return nil, fmt.Errorf("design matrix: %w", err)
	}

	coef, err := solveCoefficients(basis, design, x, y, o.Constraints)
	if err != nil {
		return nil, err
	}
	for i, v := range coef {
		coef[i] = math.Round(v*coefficientScale) / coefficientScale
	}

	fitted, err := design.MulVec(coef)
	if err != nil {
		return nil, err
	}
	residuals := make([]float64, len(y))
	floats.SubTo(residuals, y, fitted)

	return &Result{
		Coefficients: coef,
		Knots:        knots,
		Order:        order,
		Error:        floats.Dot(residuals, residuals),
		Fitted:       fitted,
		Residuals:    residuals,
		Tau:          o.Tau,
		basis:        basis,
	}, nil
}

// solveCoefficients arbitrates between the constrained solvers and the
// plain least-squares path.
func solveCoefficients(basis *bspline.Basis, design *matrix.Dense, x, y []float64, cons []constraint.Constraint) ([]float64, error) {
	n := basis.NumCoefficients()

	if len(cons) > 0 {
		lo, hi := floats.Min(x), floats.Max(x)
		sys, err := constraint.Build(basis, lo, hi, cons)
		if err != nil {
			// Unsupported constraint types and operators are caller
			// errors, not solver failures.
			return nil, err
		}
		if !sys.Empty() {
			if c := tryLinearProgram(sys, n); c != nil {
				return c, nil
			}
			if c, lerr := lsq.LSI(design, y, sys.A, sys.B); lerr == nil {
				return c, nil
			}
			// Incompatible or non-converged constraint stage: fall
			// through to the unconstrained solve.
		}
	}

	c, err := design.Solve(y)
	if err != nil {
		return nil, fmt.Errorf("least squares: %w", err)
	}

	return c, nil
}

// tryLinearProgram runs the revised simplex with the uniform ones
// objective over the stacked constraint rows and returns the vertex only
// when it is optimal, has the expected width, and satisfies the rows
// within constraintSlack. Any other outcome returns nil.
func tryLinearProgram(sys *constraint.System, n int) []float64 {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	c, status, err := simplex.Solve(sys.A, sys.B, ones)
	if err != nil || status != simplex.Optimal || len(c) != n {
		return nil
	}

	lhs, err := sys.A.MulVec(c)
	if err != nil {
		return nil
	}
	for i, v := range lhs {
		if v > sys.B[i]+constraintSlack {
			return nil
		}
	}

	return c
}

// resolveKnots validates user-supplied knots or generates the clamped
// default vector.
func resolveKnots(x []float64, order int, user []float64) ([]float64, error) {
	if user != nil {
		if len(user) < 2*order {
			return nil, fmt.Errorf("%d knots for order %d: %w", len(user), order, ErrInvalidKnots)
		}
		for i := 1; i < len(user); i++ {
			if user[i] < user[i-1] {
				return nil, fmt.Errorf("knot %d decreases: %w", i, ErrInvalidKnots)
			}
		}
		knots := make([]float64, len(user))
		copy(knots, user)

		return knots, nil
	}

	return generateKnots(x, order), nil
}

// generateKnots builds the clamped default vector over x: order+1 copies
// of the first abscissa, equally spaced interior knots when the data allow
// any, and order+1 copies of the last abscissa. For n ≥ order+1 data
// points the vector has n+order+1 entries, so the basis carries one
// coefficient per data point; fewer points give the bare 2·(order+1)
// clamped entries and order+1 coefficients.
func generateKnots(x []float64, order int) []float64 {
	n := len(x)
	lo, hi := x[0], x[n-1]

	knots := make([]float64, 0, n+order+1)
	for i := 0; i <= order; i++ {
		knots = append(knots, lo)
	}
	if inner := n - order - 1; inner > 0 {
		span := hi - lo
		for i := 1; i <= inner; i++ {
			knots = append(knots, lo+span*float64(i)/float64(inner+1))
		}
	}
	for i := 0; i <= order; i++ {
		knots = append(knots, hi)
	}

	return knots
}
