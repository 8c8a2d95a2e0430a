package lsq_test

import (
	"testing"

	"github.com/katalvlaran/cobs/lsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLDP_ActiveBound: min ‖x‖ s.t. x ≥ 1 lands on the bound.
func TestLDP_ActiveBound(t *testing.T) {
	g := mustDense(t, [][]float64{{1}})
	x, err := lsq.LDP(g, []float64{1})
	require.NoError(t, err)
	require.Len(t, x, 1)
	assert.InDelta(t, 1.0, x[0], 1e-8)
}

// TestLDP_TwoBounds: independent lower bounds are each met exactly.
func TestLDP_TwoBounds(t *testing.T) {
	g := mustDense(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	x, err := lsq.LDP(g, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-8)
	assert.InDelta(t, 2.0, x[1], 1e-8)
}

// TestLDP_InactiveConstraints: slack bounds leave the origin optimal.
func TestLDP_InactiveConstraints(t *testing.T) {
	g := mustDense(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	x, err := lsq.LDP(g, []float64{-1, -3})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x[0], 1e-10)
	assert.InDelta(t, 0.0, x[1], 1e-10)
}

// TestLDP_CoupledConstraint: min ‖x‖ s.t. x1 + x2 ≥ 2 splits the load.
func TestLDP_CoupledConstraint(t *testing.T) {
	g := mustDense(t, [][]float64{{1, 1}})
	x, err := lsq.LDP(g, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-8)
	assert.InDelta(t, 1.0, x[1], 1e-8)
}

// TestLDP_Incompatible: x ≥ 1 together with −x ≥ 0 cannot hold.
func TestLDP_Incompatible(t *testing.T) {
	g := mustDense(t, [][]float64{{1}, {-1}})
	_, err := lsq.LDP(g, []float64{1, 0})
	assert.ErrorIs(t, err, lsq.ErrIncompatible)
}

// TestLDP_BadInput rejects shape mismatches.
func TestLDP_BadInput(t *testing.T) {
	g := mustDense(t, [][]float64{{1, 0}})
	_, err := lsq.LDP(g, []float64{1, 2})
	assert.ErrorIs(t, err, lsq.ErrBadInput)

	_, err = lsq.LDP(nil, []float64{1})
	assert.ErrorIs(t, err, lsq.ErrBadInput)
}
