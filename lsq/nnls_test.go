package lsq_test

import (
	"testing"

	"github.com/katalvlaran/cobs/lsq"
	"github.com/katalvlaran/cobs/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromSlice(rows)
	require.NoError(t, err)
	return m
}

// TestNNLS_ClampsNegativeComponent: identity system with one negative
// target pins that coordinate at zero.
func TestNNLS_ClampsNegativeComponent(t *testing.T) {
	e := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	u, rnorm, err := lsq.NNLS(e, []float64{1, -1}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u[0], 1e-8)
	assert.InDelta(t, 0.0, u[1], 1e-8)
	assert.InDelta(t, 1.0, rnorm, 1e-8, "residual carries the clamped target")
}

// TestNNLS_MatchesUnconstrained: when the least-squares solution is already
// non-negative NNLS reproduces it with zero residual.
func TestNNLS_MatchesUnconstrained(t *testing.T) {
	e := mustDense(t, [][]float64{
		{1, 0},
		{1, 1},
		{0, 1},
	})
	// Consistent system with solution (2, 3).
	u, rnorm, err := lsq.NNLS(e, []float64{2, 5, 3}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, u[0], 1e-6)
	assert.InDelta(t, 3.0, u[1], 1e-6)
	assert.InDelta(t, 0.0, rnorm, 1e-6)
}

// TestNNLS_ZeroSolution: a target pointing away from every column keeps u=0.
func TestNNLS_ZeroSolution(t *testing.T) {
	e := mustDense(t, [][]float64{{1, 2}, {1, 1}})
	u, rnorm, err := lsq.NNLS(e, []float64{-1, -1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, u)
	assert.Greater(t, rnorm, 1.0)
}

// TestNNLS_BadInput rejects shape mismatches.
func TestNNLS_BadInput(t *testing.T) {
	e := mustDense(t, [][]float64{{1, 0}})
	_, _, err := lsq.NNLS(e, []float64{1, 2}, 0)
	assert.ErrorIs(t, err, lsq.ErrBadInput)

	_, _, err = lsq.NNLS(nil, []float64{1}, 0)
	assert.ErrorIs(t, err, lsq.ErrBadInput)
}
