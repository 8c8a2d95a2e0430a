package bspline_test

import (
	"testing"

	"github.com/katalvlaran/cobs/bspline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clampedKnots builds a clamped knot vector over [lo, hi] with the given
// order and inner count, mirroring what the fitting surface generates.
func clampedKnots(lo, hi float64, order, inner int) []float64 {
	var t []float64
	for i := 0; i <= order; i++ {
		t = append(t, lo)
	}
	for i := 1; i <= inner; i++ {
		t = append(t, lo+(hi-lo)*float64(i)/float64(inner+1))
	}
	for i := 0; i <= order; i++ {
		t = append(t, hi)
	}
	return t
}

// TestNew_Validation covers order and knot-vector rejection paths.
func TestNew_Validation(t *testing.T) {
	_, err := bspline.New([]float64{0, 0, 1, 1}, 0)
	assert.ErrorIs(t, err, bspline.ErrBadOrder, "order 0 must error")

	_, err = bspline.New([]float64{0, 1, 0.5, 2}, 1)
	assert.ErrorIs(t, err, bspline.ErrBadKnots, "decreasing knots must error")

	_, err = bspline.New([]float64{0, 1}, 2)
	assert.ErrorIs(t, err, bspline.ErrBadKnots, "too-short vector must error")
}

// TestBasis_NumCoefficients checks the |T| − order − 1 bookkeeping.
func TestBasis_NumCoefficients(t *testing.T) {
	knots := clampedKnots(0, 1, 3, 2) // 4 + 2 + 4 = 10 knots
	b, err := bspline.New(knots, 3)
	require.NoError(t, err)
	assert.Equal(t, 10-3-1, b.NumCoefficients())
}

// TestBasis_KnotsCopied verifies the accessor returns an independent copy.
func TestBasis_KnotsCopied(t *testing.T) {
	src := clampedKnots(0, 1, 2, 1)
	b, err := bspline.New(src, 2)
	require.NoError(t, err)

	got := b.Knots()
	got[0] = 99
	again := b.Knots()
	assert.Equal(t, 0.0, again[0], "mutating the returned slice must not affect the basis")
}

// TestFindSpan_Boundaries checks the clamping policy at both ends and the
// ties-to-left rule at interior knots.
func TestFindSpan_Boundaries(t *testing.T) {
	order := 3
	knots := clampedKnots(0, 4, order, 3) // interior knots at 1, 2, 3
	b, err := bspline.New(knots, order)
	require.NoError(t, err)
	n := b.NumCoefficients()

	assert.Equal(t, order, b.FindSpan(-5), "below the domain clamps to order")
	assert.Equal(t, order, b.FindSpan(0), "left endpoint clamps to order")
	assert.Equal(t, n-1, b.FindSpan(4), "right endpoint clamps to n-1")
	assert.Equal(t, n-1, b.FindSpan(99), "beyond the domain clamps to n-1")

	// Interior: knots[s] <= x < knots[s+1] must hold.
	for _, x := range []float64{0.25, 1.0, 1.5, 2.0, 2.999, 3.0, 3.7} {
		s := b.FindSpan(x)
		kn := b.Knots()
		assert.LessOrEqual(t, kn[s], x, "span lower bound at x=%v", x)
		assert.Less(t, x, kn[s+1], "span upper bound at x=%v", x)
	}
}

// TestEvaluate_PartitionOfUnity sweeps the active interval and checks the
// basis row sums to one.
func TestEvaluate_PartitionOfUnity(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		knots := clampedKnots(0, 10, order, 4)
		b, err := bspline.New(knots, order)
		require.NoError(t, err)

		for i := 0; i <= 200; i++ {
			x := 10 * float64(i) / 200
			sum := 0.0
			for _, v := range b.Evaluate(x) {
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-10, "order %d at x=%v", order, x)
		}
	}
}

// TestEvaluate_LocalSupport verifies at most order+1 non-zero entries per row.
func TestEvaluate_LocalSupport(t *testing.T) {
	order := 4
	b, err := bspline.New(clampedKnots(0, 1, order, 6), order)
	require.NoError(t, err)

	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		nz := 0
		for _, v := range b.Evaluate(x) {
			if v != 0 {
				nz++
			}
		}
		assert.LessOrEqual(t, nz, order+1, "at x=%v", x)
	}
}

// TestEvaluate_Nonnegative checks basis values never dip below zero.
func TestEvaluate_Nonnegative(t *testing.T) {
	order := 3
	b, err := bspline.New(clampedKnots(-2, 2, order, 5), order)
	require.NoError(t, err)

	for i := 0; i <= 100; i++ {
		x := -2 + 4*float64(i)/100
		for j, v := range b.Evaluate(x) {
			assert.GreaterOrEqual(t, v, -1e-14, "basis %d at x=%v", j, x)
		}
	}
}
