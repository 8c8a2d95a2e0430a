package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cobs"
	"github.com/katalvlaran/cobs/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSave_WritesPNG renders a small fit into a temp directory.
func TestSave_WritesPNG(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}
	res, err := cobs.Fit(x, y, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, render.Save(x, y, res, "squares", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "plot file must not be empty")
}

// TestSave_NoData rejects empty or inconsistent input.
func TestSave_NoData(t *testing.T) {
	err := render.Save(nil, nil, nil, "", "out.png")
	assert.ErrorIs(t, err, render.ErrNoData)

	err = render.Save([]float64{1}, []float64{1, 2}, nil, "", "out.png")
	assert.ErrorIs(t, err, render.ErrNoData)
}
