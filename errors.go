// Package cobs: sentinel error set of the fitting surface. Subpackage
// sentinels that are part of the public contract are re-exported here so
// callers can match every fit failure with errors.Is against this package
// alone.

package cobs

import (
	"errors"

	"github.com/katalvlaran/cobs/constraint"
	"github.com/katalvlaran/cobs/matrix"
)

var (
	// ErrInvalidInput is returned for mismatched x/y lengths, fewer than
	// two data points, a negative spline order, or a tau outside (0, 1).
	ErrInvalidInput = errors.New("cobs: invalid input")

	// ErrInvalidKnots is returned when user-supplied knots are too short
	// for the order or not non-decreasing.
	ErrInvalidKnots = errors.New("cobs: invalid knot vector")
)

// ErrUnsupportedConstraint reports a constraint type outside the
// enumerated set. Alias of the constraint package sentinel.
var ErrUnsupportedConstraint = constraint.ErrUnsupportedConstraint

// ErrUnsupportedOperator reports a pointwise operator outside {=, <=, >=}.
// Alias of the constraint package sentinel.
var ErrUnsupportedOperator = constraint.ErrUnsupportedOperator

// ErrSingularMatrix reports that the regularized normal equations of the
// least-squares path were still singular. Alias of matrix.ErrSingular.
var ErrSingularMatrix = matrix.ErrSingular
