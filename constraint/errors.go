// Package constraint: sentinel error set. Tests match these via errors.Is.

package constraint

import "errors"

var (
	// ErrUnsupportedConstraint is returned when a constraint carries a type
	// outside the enumerated set.
	ErrUnsupportedConstraint = errors.New("constraint: unsupported constraint type")

	// ErrUnsupportedOperator is returned when a pointwise constraint uses an
	// operator other than "=", "<=" or ">=".
	ErrUnsupportedOperator = errors.New("constraint: unsupported pointwise operator")

	// ErrNilBasis is returned when Build receives no basis to sample.
	ErrNilBasis = errors.New("constraint: nil basis")
)
