// Package matrix: sentinel error set.
// All routines return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", err)); tests match them with errors.Is. No routine
// panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive,
	// or when a 2-D slice constructor receives empty input.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned by NewFromSlice when rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this rather than panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or MulVec with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadTriplets is returned when the parallel triplet arrays differ in
	// length or reference an entry outside the target shape.
	ErrBadTriplets = errors.New("matrix: malformed triplet arrays")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when Gauss–Jordan elimination meets a pivot
	// below PivotTolerance, or when the regularized normal equations in
	// Solve are still singular.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive
	// pivot shows the matrix is not SPD to working precision.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)
