package univariate

import (
	"math"

	"github.com/uniopt/uniopt/write"
)

// testSettings silences the iteration display and caps the run so that a
// broken solver cannot hang the tests.
func testSettings() *Settings {
	s := DefaultSettings()
	s.WriteSettings = &write.WriteSettings{}
	s.MaximumIterations = 1000
	return s
}

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) Grad2(x float64) (grad, curv float64) {
	return 2 * (x - q.b), 2
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

// cubicWell is x³/3 − x, with a local maximum at −1 and a local minimum
// at 1. Both are stationary points of the derivative x² − 1.
type cubicWell struct{}

func (cubicWell) Obj(x float64) float64 {
	return x*x*x/3 - x
}

func (cubicWell) Grad2(x float64) (grad, curv float64) {
	return x*x - 1, 2 * x
}

// cosLog is cos(x)·log(x), a multimodal function on the positive axis.
type cosLog struct{}

func (cosLog) Obj(x float64) float64 {
	return math.Cos(x) * math.Log(x)
}

func (cosLog) Grad2(x float64) (grad, curv float64) {
	sin, cos := math.Sincos(x)
	log := math.Log(x)
	grad = -sin*log + cos/x
	curv = -cos*log - 2*sin/x - cos/(x*x)
	return grad, curv
}

// expLine is eˣ − 2x, with its only minimum at log 2 and strictly positive
// curvature everywhere.
type expLine struct{}

func (expLine) Obj(x float64) float64 {
	return math.Exp(x) - 2*x
}

func (expLine) OptLoc() float64 {
	return math.Ln2
}

// line is an affine function. Its second divided difference vanishes, which
// breaks parabolic interpolation.
type line struct{}

func (line) Obj(x float64) float64 {
	return 2*x + 1
}
