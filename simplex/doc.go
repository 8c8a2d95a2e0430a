// Package simplex implements a revised primal simplex method over dense
// matrices, sized for the small coefficient-space programs a constrained
// spline fit produces.
//
// Solve minimizes cᵀx subject to the rows of A with right-hand side b,
// searching non-negative x. The basis inverse is recomputed from the
// current basic columns each iteration (a solve-based revision rather than
// tableau updates), entering columns are picked by most-negative reduced
// cost, and leaving rows by the usual minimum-ratio test.
//
// Initialization is a heuristic Phase-I substitute: each row first scans
// for a unit column to seed its basic variable and otherwise borrows an
// arbitrary non-basic column. There is no big-M machinery, so a start like
// this can be infeasible or singular; every such outcome is reported
// through an explicit Status rather than an error or a panic, and the
// fitting layer treats any non-Optimal status as "fall back to least
// squares".
package simplex
