package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cobs/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDense_Mul checks a hand-computed 2x3 · 3x2 product.
func TestDense_Mul(t *testing.T) {
	a, err := matrix.NewFromSlice([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := matrix.NewFromSlice([][]float64{{7, 8}, {9, 10}, {11, 12}})
	require.NoError(t, err)

	c, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 2, c.Cols())

	want := [][]float64{{58, 64}, {139, 154}}
	for i := range want {
		for j := range want[i] {
			v, _ := c.At(i, j)
			assert.Equal(t, want[i][j], v, "entry (%d,%d)", i, j)
		}
	}
}

// TestDense_Mul_DimensionMismatch rejects incompatible inner dimensions.
func TestDense_Mul_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)

	_, err := a.Mul(b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Mul(nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_MulVec checks matrix-vector multiplication and its length guard.
func TestDense_MulVec(t *testing.T) {
	m, err := matrix.NewFromSlice([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	y, err := m.MulVec([]float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	_, err = m.MulVec([]float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Transpose verifies shape and entries after transposition.
func TestDense_Transpose(t *testing.T) {
	m, err := matrix.NewFromSlice([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	v, _ := tr.At(2, 1)
	assert.Equal(t, 6.0, v)
	v, _ = tr.At(0, 1)
	assert.Equal(t, 4.0, v)
}

// TestDense_Scale verifies that scaling allocates a new matrix.
func TestDense_Scale(t *testing.T) {
	m, err := matrix.NewFromSlice([][]float64{{1, -2}})
	require.NoError(t, err)

	s := m.Scale(3)
	v, _ := s.At(0, 1)
	assert.Equal(t, -6.0, v)

	v, _ = m.At(0, 1)
	assert.Equal(t, -2.0, v, "the receiver must be untouched")
}

// TestDense_MaxAbs checks the element-wise max-magnitude reduction.
func TestDense_MaxAbs(t *testing.T) {
	m, err := matrix.NewFromSlice([][]float64{{1, -7.5}, {3, 2}})
	require.NoError(t, err)
	assert.Equal(t, 7.5, m.MaxAbs())

	z, _ := matrix.NewDense(2, 2)
	assert.Zero(t, z.MaxAbs())
}
