// Package lsq solves the inequality-constrained least-squares problems a
// shape-constrained spline fit reduces to, via the classic Lawson–Hanson
// chain:
//
//   - NNLS — min ‖E·u − f‖₂ subject to u ≥ 0, by the active-set method;
//   - LDP  — min ‖x‖₂ subject to G·x ≥ h, reduced to one NNLS solve on the
//     augmented matrix [Gᵀ; hᵀ];
//   - LSI  — min ‖D·c − y‖₂ subject to A·c ≤ b, reduced to an LDP in the
//     whitened variable w = Lᵀc − L⁻¹Dᵀy where L·Lᵀ is the (ridge-
//     regularized) Cholesky factor of DᵀD.
//
// The fitting layer calls LSI when the direct linear program over the
// constraint rows yields no usable vertex (a non-optimal status, or an
// optimal vertex that misses a row): the unconstrained solution
// is then pulled the minimum distance needed to honor every constraint
// row, so monotone, convex, periodic and pointwise requirements hold in
// the returned coefficients.
//
// Infeasible constraint systems surface as ErrIncompatible; callers decide
// their own fallback.
//
// Reference: C.L. Lawson, R.J. Hanson, Solving Least Squares Problems,
// Prentice-Hall, 1974 (ch. 23).
package lsq
