// Package lsq: sentinel error set. Tests match these via errors.Is.

package lsq

import "errors"

var (
	// ErrIncompatible is returned when the inequality constraints admit no
	// solution (the LDP residual vanishes).
	ErrIncompatible = errors.New("lsq: incompatible inequality constraints")

	// ErrBadInput is returned when operand dimensions disagree.
	ErrBadInput = errors.New("lsq: malformed problem dimensions")

	// ErrExceededIterations is returned when the NNLS active-set loop does
	// not converge within its iteration budget.
	ErrExceededIterations = errors.New("lsq: active-set iteration limit exceeded")
)
