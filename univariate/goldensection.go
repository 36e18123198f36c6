package univariate

import (
	"errors"
	"math"

	"github.com/uniopt/uniopt/common"
)

// GoldenSection performs a golden-section search for the minimum of a
// unimodal function over an explicit bracket [a, b]. The two interior
// points sit at distance (b−a)/φ from each end so that one of them can be
// reused after each shrink, costing a single new function evaluation per
// iteration. The bracket width contracts by 1/φ ≈ 0.618 per iteration and
// the minimizer never leaves the bracket, provided the function really is
// unimodal on it.
type GoldenSection struct {
	// Tol is the absolute tolerance on the returned minimizer. The search
	// stops once the bracket width is at most 2*Tol and the midpoint is
	// returned.
	Tol float64

	// Monitor, if non-nil, is called with the initial bracket and with the
	// bracket after every shrink.
	Monitor func(a, b float64)

	f Objective

	a, b   float64
	x1, x2 float64
	f1, f2 float64
}

// NewGoldenSection returns a golden-section searcher over the bracket
// [a, b], which must contain the minimizer.
func NewGoldenSection(a, b, tol float64) *GoldenSection {
	return &GoldenSection{
		Tol: tol,
		a:   a,
		b:   b,
	}
}

// Init sets up the two interior points. The initial location passed by the
// driver is ignored; the bracket fixed at construction is what the search
// operates on.
func (g *GoldenSection) Init(f Objective, initLoc, initObj float64) error {
	if !(g.a < g.b) {
		return errors.New("goldensection: bracket is not an interval")
	}
	if g.Tol <= 0 {
		return errors.New("goldensection: tolerance not positive")
	}
	g.f = f

	g.x1 = g.b + (g.a-g.b)/math.Phi
	g.x2 = g.a + (g.b-g.a)/math.Phi
	g.f1 = f.Obj(g.x1)
	g.f2 = f.Obj(g.x2)

	if g.Monitor != nil {
		g.Monitor(g.a, g.b)
	}
	return nil
}

func (g *GoldenSection) Status() common.Status {
	if g.b-g.a <= 2*g.Tol {
		return common.BoundsConverged
	}
	return common.Continue
}

func (g *GoldenSection) Iterate() (loc, obj float64, nFunEvals int, err error) {
	switch {
	case g.f1 < g.f2:
		// Minimizer is in [a, x2]: the old x1 becomes the new x2
		g.b = g.x2
		g.x2 = g.x1
		g.f2 = g.f1
		g.x1 = g.b + (g.a-g.b)/math.Phi
		g.f1 = g.f.Obj(g.x1)
		nFunEvals = 1
	case g.f1 > g.f2:
		// Minimizer is in [x1, b]: the old x2 becomes the new x1
		g.a = g.x1
		g.x1 = g.x2
		g.f1 = g.f2
		g.x2 = g.a + (g.b-g.a)/math.Phi
		g.f2 = g.f.Obj(g.x2)
		nFunEvals = 1
	default:
		// Equal interior values. Shrink to [x1, x2] and recompute both
		// points; correct but costs an extra evaluation
		g.a = g.x1
		g.b = g.x2
		g.x1 = g.b + (g.a-g.b)/math.Phi
		g.x2 = g.a + (g.b-g.a)/math.Phi
		g.f1 = g.f.Obj(g.x1)
		g.f2 = g.f.Obj(g.x2)
		nFunEvals = 2
	}

	if g.Monitor != nil {
		g.Monitor(g.a, g.b)
	}

	loc = (g.a + g.b) / 2
	obj = math.Min(g.f1, g.f2)
	return loc, obj, nFunEvals, nil
}

func (g *GoldenSection) Result() {}
