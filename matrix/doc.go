// Package matrix provides the dense linear-algebra primitives used by the
// spline-fitting pipeline: a row-major Dense matrix with bounds-checked
// accessors, sparse-triplet construction, multiplication, transposition,
// Gauss–Jordan inversion and a regularized least-squares solve.
//
// Construction modes:
//
//   - NewDense(r, c)              — zero-filled r×c matrix
//   - NewFromSlice(rows)          — from a 2-D slice; rejects ragged or empty input
//   - NewFromTriplets(v, ri, ci, r, c) — from parallel (value, row, col) arrays,
//     zeros elsewhere; the builder interface producers assemble against
//
// Matrices are stored dense regardless of how they were built. The triplet
// interface exists so producers (design-matrix assembly, constraint rows) can
// emit only significant entries; a true sparse kernel is a deliberate
// non-goal of this package.
//
// Numeric policy:
//
//   - Inverse uses partial pivoting and reports ErrSingular when the best
//     pivot magnitude falls below PivotTolerance.
//   - Solve forms the regularized normal equations AᵀA + λI with λ = Ridge,
//     so near-rank-deficient systems (coincident knots, near-collinear
//     abscissae) still yield a coefficient vector.
//
// All operations allocate fresh results and never mutate their operands.
package matrix
