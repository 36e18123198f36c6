package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/uniopt/uniopt/cheb"
)

const plotSamples = 600

// savePlot writes a PNG with the function, its Chebyshev surrogate, and
// the located minimum.
func savePlot(path string, f func(float64) float64, p *cheb.Approx, minX, minF float64) error {
	fun := make(plotter.XYs, plotSamples+1)
	sur := make(plotter.XYs, plotSamples+1)
	for i := 0; i <= plotSamples; i++ {
		x := p.A + (p.B-p.A)*float64(i)/plotSamples
		fun[i].X, fun[i].Y = x, f(x)
		sur[i].X, sur[i].Y = x, p.Eval(x)
	}

	pl := plot.New()
	pl.Title.Text = "Chebyshev surrogate minimization"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "f(x)"

	if err := plotutil.AddLines(pl, "function", fun, "surrogate", sur); err != nil {
		return err
	}

	min, err := plotter.NewScatter(plotter.XYs{{X: minX, Y: minF}})
	if err != nil {
		return err
	}
	pl.Add(min)
	pl.Legend.Add("minimum", min)

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
