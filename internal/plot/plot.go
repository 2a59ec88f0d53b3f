// Package plot draws sampled waves as PNG line charts.
package plot

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// sliceXY adapts two parallel slices to plotter.XYer.
type sliceXY struct {
	xs, ys []float64
}

func (s sliceXY) Len() int {
	return len(s.xs)
}

func (s sliceXY) XY(i int) (x, y float64) {
	return s.xs[i], s.ys[i]
}

// Line creates a line plot of ys over xs with a zero baseline.
func Line(title string, xs, ys []float64) (*plot.Plot, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched lengths: %d x values, %d y values", len(xs), len(ys))
	}

	if len(xs) == 0 {
		return nil, errors.New("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	line, err := plotter.NewLine(sliceXY{xs: xs, ys: ys})
	if err != nil {
		return nil, fmt.Errorf("failed creating line for samples: %w", err)
	}
	line.Color = colornames.Mediumpurple

	baseline := plotter.NewFunction(func(float64) float64 { return 0 })
	baseline.Color = colornames.Gray
	baseline.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}

	p.Add(plotter.NewGrid(), baseline, line)

	return p, nil
}

// WritePNG renders p as a PNG of the given size to w.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}

	return nil
}
