package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cobs"
)

// curveSamples is the number of points the fitted curve is sampled at.
const curveSamples = 200

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("render: no data points")

// Save renders the samples (x, y) as a scatter and res as a dense line
// over [min(x), max(x)], then writes a PNG to path. The plot dimensions
// follow the customary 15cm square.
func Save(x, y []float64, res *cobs.Result, title, path string) error {
	if len(x) == 0 || len(x) != len(y) || res == nil {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(xyPoints(x, y))
	if err != nil {
		return fmt.Errorf("could not build scatter: %w", err)
	}
	p.Add(scatter)
	p.Legend.Add("data", scatter)

	cx, cy := sampleCurve(res, floats.Min(x), floats.Max(x))
	line, err := plotter.NewLine(xyPoints(cx, cy))
	if err != nil {
		return fmt.Errorf("could not build fitted line: %w", err)
	}
	p.Add(line)
	p.Legend.Add("fit", line)

	if err := p.Save(15*vg.Centimeter, 15*vg.Centimeter, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}

	return nil
}

// sampleCurve evaluates the fit on a uniform grid over [lo, hi].
func sampleCurve(res *cobs.Result, lo, hi float64) ([]float64, []float64) {
	xs := make([]float64, curveSamples)
	ys := make([]float64, curveSamples)
	step := (hi - lo) / float64(curveSamples-1)
	for i := range xs {
		xs[i] = lo + step*float64(i)
		ys[i] = res.Evaluate(xs[i])
	}

	return xs, ys
}

// xyPoints adapts parallel slices to the plotter point format.
func xyPoints(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}

	return xy
}
