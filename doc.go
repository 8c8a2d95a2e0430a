// Package cobs fits constrained regression B-splines to one-dimensional
// scattered data: given samples (xᵢ, yᵢ) it produces a piecewise-polynomial
// ŝ(x) of chosen order that tracks the data and honors qualitative shape
// requirements — monotonicity, convexity or concavity, periodicity, and
// pointwise equalities or inequalities at chosen abscissae.
//
// 🚀 What does a fit do?
//
//	Fit(x, y, opts) assembles a clamped knot vector (or takes yours),
//	builds the B-spline design matrix, translates every constraint into
//	linear rows over the coefficients, and solves:
//	  • no constraints   — regularized least squares on the design matrix
//	  • with constraints — a linear program over the constraint rows,
//	    refined by an inequality-constrained least-squares stage whenever
//	    the LP cannot produce a usable vertex
//	The result carries coefficients, fitted values, residuals and scalar
//	evaluators for the spline and its second derivative.
//
// ✨ Key features:
//   - clamped knot generation with equally spaced interior knots
//   - shape constraints sampled on a fixed interior grid
//   - silent recovery: every internal solver failure falls back toward
//     least squares; the caller only ever sees a complete fit
//   - pure Go numerics; the kernels live in the matrix, bspline,
//     constraint, simplex and lsq subpackages
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cobs"
//
//	opts := cobs.DefaultOptions()
//	opts.Constraints = []constraint.Constraint{constraint.NewMonotone(true)}
//	res, err := cobs.Fit(x, y, &opts)
//	if err != nil { ... }
//	mid := res.Evaluate(2.5)
//
// See the Example functions in the package tests for runnable scenario
// walkthroughs and the render package for plotting a finished fit.
package cobs
