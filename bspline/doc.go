// Package bspline evaluates B-spline basis functions over a clamped knot
// vector: values, first and second derivatives, and the design matrices a
// regression fit is assembled from.
//
// A Basis is immutable once constructed from (knots, order). Knots must be
// non-decreasing; the number of coefficients it spans is
// len(knots) − order − 1. Evaluation uses the Cox–de Boor triangular
// recurrence, derivatives the divided-difference cascade over the same
// triangle, so at any abscissa at most order+1 of the returned entries are
// non-zero and the values form a partition of unity on the active interval
// [knots[order], knots[numCoefficients]].
//
// Design-matrix assembly emits entries through the sparse-triplet interface
// of package matrix, dropping magnitudes at or below EmitThreshold.
//
// Throughout this package "order" is used the way the fitting surface uses
// it (default 4): it is the recurrence depth of the de Boor triangle, so
// the pieces are polynomials of degree order (quartic for the default) and
// order+1 basis functions are active at any abscissa.
package bspline
