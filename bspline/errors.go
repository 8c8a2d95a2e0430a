// Package bspline: sentinel error set. Tests match these via errors.Is.

package bspline

import "errors"

var (
	// ErrBadOrder is returned when the requested spline order is < 1.
	ErrBadOrder = errors.New("bspline: order must be >= 1")

	// ErrBadKnots is returned when the knot vector is decreasing somewhere
	// or too short to span at least one basis function.
	ErrBadKnots = errors.New("bspline: invalid knot vector")

	// ErrBadDerivative is returned when a derivative order outside the
	// supported range is requested from matrix assembly.
	ErrBadDerivative = errors.New("bspline: unsupported derivative order")

	// ErrNoSamples is returned when matrix assembly receives no abscissae.
	ErrNoSamples = errors.New("bspline: no sample points")
)
