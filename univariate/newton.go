package univariate

import (
	"errors"
	"math"

	"github.com/uniopt/uniopt/common"
)

// Newton finds a stationary point of the objective by iterating
// x ← x − g'(x)/g″(x). It converges quadratically when started close
// enough to a stationary point with nonzero curvature, but has no
// safeguards: it can diverge or oscillate from a poor starting point, and
// it makes no distinction between minima, maxima and saddle points. The
// caller is responsible for checking which one was found.
type Newton struct {
	// Tol stops the iteration when the magnitude of the Newton step falls
	// below it. Zero or negative disables the check; the gradient tolerance
	// in the settings then decides convergence.
	Tol float64

	// Monitor, if non-nil, is called with the initial location and with
	// every accepted iterate.
	Monitor func(x float64)

	df Grad2er

	loc      float64
	grad     float64
	curv     float64
	lastStep float64
}

func NewNewton(tol float64) *Newton {
	return &Newton{
		Tol: tol,
	}
}

func (n *Newton) Init(df Grad2er, initLoc, initGrad, initCurv float64) error {
	if df == nil {
		return errors.New("newton: nil derivative function")
	}
	n.df = df
	n.loc = initLoc
	n.grad = initGrad
	n.curv = initCurv
	n.lastStep = math.Inf(1)

	if n.Monitor != nil {
		n.Monitor(initLoc)
	}
	return nil
}

func (n *Newton) Status() common.Status {
	if n.Tol > 0 && math.Abs(n.lastStep) < n.Tol {
		return common.LocChangeTol
	}
	return common.Continue
}

func (n *Newton) Iterate() (loc, grad float64, nFunEvals int, err error) {
	step := -n.grad / n.curv
	n.loc += step
	n.lastStep = step

	n.grad, n.curv = n.df.Grad2(n.loc)

	if n.Monitor != nil {
		n.Monitor(n.loc)
	}
	return n.loc, n.grad, 1, nil
}

func (n *Newton) Result() {}

// GuardedNewton is the Newton iteration with a backtracking guard: a full
// step is proposed first, and the step fraction is halved until the
// proposed point strictly decreases the objective. The sequence of
// accepted objective values is therefore strictly decreasing, which rules
// out the convergence to maxima that the plain iteration allows.
type GuardedNewton struct {
	// Tol stops the iteration when the magnitude of the last accepted step
	// falls below it. Zero or negative disables the check.
	Tol float64

	// Monitor, if non-nil, is called with the initial location and with
	// every accepted iterate. Rejected proposals are not reported.
	Monitor func(x float64)

	f ObjGrad2er

	loc  float64
	obj  float64
	grad float64
	curv float64

	alpha    float64
	lastStep float64
}

func NewGuardedNewton(tol float64) *GuardedNewton {
	return &GuardedNewton{
		Tol: tol,
	}
}

func (n *GuardedNewton) Init(f ObjGrad2er, initLoc, initObj, initGrad, initCurv float64) error {
	if f == nil {
		return errors.New("newton: nil objective function")
	}
	n.f = f
	n.loc = initLoc
	n.obj = initObj
	n.grad = initGrad
	n.curv = initCurv
	n.alpha = 1
	n.lastStep = math.Inf(1)

	if n.Monitor != nil {
		n.Monitor(initLoc)
	}
	return nil
}

func (n *GuardedNewton) Status() common.Status {
	if n.Tol > 0 && math.Abs(n.lastStep) < n.Tol {
		return common.LocChangeTol
	}
	return common.Continue
}

func (n *GuardedNewton) Iterate() (loc, obj, grad float64, nFunEvals int, err error) {
	p := -n.grad / n.curv

	trial := n.loc + n.alpha*p
	trialObj := n.f.Obj(trial)

	if trialObj < n.obj {
		// Accept: recompute the Newton direction at the new point and
		// restore the full step for the next proposal
		n.lastStep = trial - n.loc
		n.loc = trial
		n.obj = trialObj
		n.grad, n.curv = n.f.Grad2(n.loc)
		n.alpha = 1

		if n.Monitor != nil {
			n.Monitor(n.loc)
		}
		return n.loc, n.obj, n.grad, 2, nil
	}

	// Reject: halve the step fraction and try again from the same point
	n.alpha /= 2
	return n.loc, n.obj, n.grad, 1, nil
}

func (n *GuardedNewton) Result() {}
