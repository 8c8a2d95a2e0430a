// Package constraint translates qualitative shape requirements on a
// regression spline — monotonicity, convexity/concavity, periodicity and
// pointwise (in)equalities — into linear rows over the spline coefficients.
//
// Every constraint becomes one block of rows in a single stacked system
// A·c ≤ b, where c is the coefficient vector the LP solver searches over:
//
//   - monotone / convex constraints sample the first or second derivative
//     basis on a fixed grid of GridSize interior points and bound its sign;
//   - periodicity equates value and slope at the two domain ends;
//   - pointwise "=" is realized as a pair of opposed inequalities, so the
//     whole system stays in the uniform A·c ≤ b form.
//
// Empty constraint input yields an empty system; Build never invents rows.
package constraint
