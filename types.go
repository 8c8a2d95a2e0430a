package cobs

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cobs/bspline"
	"github.com/katalvlaran/cobs/constraint"
)

// DefaultOrder is the spline order used when Options.Order is left zero.
// The basis builds pieces of degree order, so the default gives clamped
// quartic pieces.
const DefaultOrder = 4

const (
	// coefficientScale rounds reported coefficients to 12 decimal places,
	// damping representation jitter between solver paths.
	coefficientScale = 1e12

	// secondDerivativeStep is the central-difference step of the result's
	// second-derivative evaluator.
	secondDerivativeStep = 1e-6
)

// Options configures a fit.
//
// Fields:
//   - Order       — spline order; 0 selects DefaultOrder, negatives are
//     rejected with ErrInvalidInput.
//   - Knots       — explicit non-decreasing knot vector of length ≥
//     2·Order; when nil the fit generates clamped knots over the data.
//   - Constraints — shape constraints, translated by package constraint.
//   - Tau         — quantile level echoed into the result. Accepted in
//     (0, 1); it does not alter the squared-error loss.
//
// The remaining fields are accepted for interface compatibility and are
// currently inert: automatic smoothing selection (Lambda, IC, NumKnots)
// and per-point weighting are documented extension points, not behavior.
type Options struct {
	Order       int
	Knots       []float64
	Constraints []constraint.Constraint
	Tau         float64

	// Reserved. Accepted and ignored.
	Weights   []float64
	Lambda    float64
	IC        string
	NumKnots  int
	MaxIter   int
	Tolerance float64
	Degree    int
}

// DefaultOptions returns the documented defaults: order DefaultOrder,
// generated knots, no constraints.
func DefaultOptions() Options {
	return Options{Order: DefaultOrder}
}

// Result is a finished fit. It is self-contained and value-like: the
// slices are owned by the result and must not be mutated; the evaluators
// are pure over the stored coefficients.
type Result struct {
	// Coefficients of the fitted spline, rounded to 12 decimal places.
	Coefficients []float64
	// Knots is the knot vector the fit ran on (generated or supplied).
	Knots []float64
	// Order is the spline order the fit ran with.
	Order int
	// Error is the sum of squared residuals.
	Error float64
	// Fitted holds ŝ(xᵢ) for every input abscissa, Residuals yᵢ − ŝ(xᵢ).
	Fitted    []float64
	Residuals []float64

	// Tau echoes Options.Tau. Lambda and SIC are reserved outputs of the
	// (inert) smoothing-selection surface and are zero.
	Tau    float64
	Lambda float64
	SIC    float64

	basis *bspline.Basis
}

// Evaluate returns ŝ(x): the basis row at x dotted with the coefficients.
func (r *Result) Evaluate(x float64) float64 {
	return floats.Dot(r.basis.Evaluate(x), r.Coefficients)
}

// EvaluateSecondDerivative approximates ŝ″(x) by the central difference
// (ŝ(x+h) − 2ŝ(x) + ŝ(x−h))/h² with h = 1e−6.
//
// The exact second-derivative basis is available in package bspline; this
// evaluator keeps the finite-difference form for behavioral equivalence
// with the original fitting surface, at the cost of amplified rounding
// noise. Use bspline.Basis.EvaluateSecondDerivative when exactness
// matters.
func (r *Result) EvaluateSecondDerivative(x float64) float64 {
	h := secondDerivativeStep

	return (r.Evaluate(x+h) - 2*r.Evaluate(x) + r.Evaluate(x-h)) / (h * h)
}
