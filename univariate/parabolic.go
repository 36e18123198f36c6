package univariate

import (
	"errors"
	"math"

	"github.com/uniopt/uniopt/common"
)

// Parabolic performs successive parabolic interpolation: it keeps a sliding
// window of three points, fits the unique quadratic through them by divided
// differences, and jumps to its vertex. Close to a minimum with nonzero
// curvature the iteration converges superlinearly (order about 1.3), but
// there is no global guarantee: far from a solution it can diverge, and a
// degenerate three-point curvature estimate makes the vertex formula divide
// by (near) zero. That division is intentionally left unguarded; the run is
// reported as DegenerateCurvature once the iterates stop being finite.
type Parabolic struct {
	// Tol stops the iteration when |b − c|, the distance between the two
	// newest window points, falls below it.
	Tol float64

	// Monitor, if non-nil, is called with the initial window and with the
	// window after every step.
	Monitor func(a, b, c float64)

	f Objective

	a, b, c    float64
	fa, fb, fc float64
}

// NewParabolic returns a parabolic-interpolation searcher started from the
// points a and b; the third window point is their midpoint.
func NewParabolic(a, b, tol float64) *Parabolic {
	return &Parabolic{
		Tol: tol,
		a:   a,
		b:   b,
	}
}

// Init evaluates the objective on the initial window. The initial location
// passed by the driver is ignored; the window fixed at construction is what
// the search operates on.
func (p *Parabolic) Init(f Objective, initLoc, initObj float64) error {
	if p.a == p.b {
		return errors.New("parabolic: initial points coincide")
	}
	if p.Tol <= 0 {
		return errors.New("parabolic: tolerance not positive")
	}
	p.f = f

	p.c = (p.a + p.b) / 2
	p.fa = f.Obj(p.a)
	p.fb = f.Obj(p.b)
	p.fc = f.Obj(p.c)

	if p.Monitor != nil {
		p.Monitor(p.a, p.b, p.c)
	}
	return nil
}

func (p *Parabolic) Status() common.Status {
	if math.IsNaN(p.c) || math.IsInf(p.c, 0) {
		return common.DegenerateCurvature
	}
	if math.Abs(p.b-p.c) < p.Tol {
		return common.LocChangeTol
	}
	return common.Continue
}

func (p *Parabolic) Iterate() (loc, obj float64, nFunEvals int, err error) {
	// Divided differences of the window, then the vertex of the fitted
	// quadratic. The second difference is the curvature estimate; no guard
	// against it vanishing.
	d1 := (p.fb - p.fa) / (p.b - p.a)
	d2 := ((p.fc-p.fb)/(p.c-p.b) - d1) / (p.c - p.a)
	x := (p.a+p.b)/2 - d1/(2*d2)

	p.a, p.b, p.c = p.b, p.c, x
	p.fa, p.fb = p.fb, p.fc
	p.fc = p.f.Obj(x)

	if p.Monitor != nil {
		p.Monitor(p.a, p.b, p.c)
	}
	return x, p.fc, 1, nil
}

func (p *Parabolic) Result() {}
