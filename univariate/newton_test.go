package univariate

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/uniopt/uniopt/common"
)

func TestNewtonQuadratic(t *testing.T) {
	q := quadratic{b: 3, c: 5}

	result, err := OptimizeGrad2(q, -7, testSettings(), NewNewton(0))
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), 1e-10, 1e-10) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v. Status: %v", q.OptLoc(), result.Loc, result.Status)
	}
	if math.Abs(result.Grad) > 1e-6 {
		t.Errorf("gradient not below tolerance at solution: %v", result.Grad)
	}
	// The quadratic is solved by a single full Newton step
	if result.Iterations > 2 {
		t.Errorf("too many iterations for a quadratic: %v", result.Iterations)
	}
}

func TestNewtonMinimum(t *testing.T) {
	result, err := OptimizeGrad2(cubicWell{}, 1.3, testSettings(), NewNewton(0))
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, 1, 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: 1, Found: %v. Status: %v", result.Loc, result.Status)
	}
	if math.Abs(result.Grad) > 1e-6 {
		t.Errorf("gradient not below tolerance at solution: %v", result.Grad)
	}
}

// The plain iteration solves g' = 0 and lands on whatever stationary point
// is nearby, maxima included.
func TestNewtonFindsMaximum(t *testing.T) {
	result, err := OptimizeGrad2(cubicWell{}, -1.2, testSettings(), NewNewton(0))
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, -1, 1e-6, 1e-6) {
		t.Errorf("expected convergence to the maximum at -1, found %v", result.Loc)
	}
}

func TestNewtonIterationCap(t *testing.T) {
	s := testSettings()
	s.MaximumIterations = 2

	result, err := OptimizeGrad2(cubicWell{}, 5, s, NewNewton(0))
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected ErrNotConverged, got %v", err)
	}
	if result.Status != common.MaximumIterations {
		t.Errorf("wrong status: %v", result.Status)
	}
}

func TestNewtonMonitor(t *testing.T) {
	var trace []float64
	opt := NewNewton(0)
	opt.Monitor = func(x float64) {
		trace = append(trace, x)
	}

	result, err := OptimizeGrad2(cubicWell{}, 1.3, testSettings(), opt)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if len(trace) < 2 {
		t.Fatalf("monitor not invoked: %d calls", len(trace))
	}
	if trace[0] != 1.3 {
		t.Errorf("monitor did not see the initial location: %v", trace[0])
	}
	if trace[len(trace)-1] != result.Loc {
		t.Errorf("monitor did not see the final location: %v != %v", trace[len(trace)-1], result.Loc)
	}
}

func TestGuardedNewtonDescent(t *testing.T) {
	f := cubicWell{}

	var objs []float64
	opt := NewGuardedNewton(0)
	opt.Monitor = func(x float64) {
		objs = append(objs, f.Obj(x))
	}

	result, err := OptimizeObjGrad2(f, 1.8, testSettings(), opt)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, 1, 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: 1, Found: %v. Status: %v", result.Loc, result.Status)
	}
	for i := 1; i < len(objs); i++ {
		if objs[i] >= objs[i-1] {
			t.Errorf("accepted objective values not strictly decreasing: f_%d = %v, f_%d = %v",
				i-1, objs[i-1], i, objs[i])
		}
	}
}

func TestGuardedNewtonMultimodal(t *testing.T) {
	// Started between the peaks of cos(x)·log(x), the guard forces descent
	// into a minimum rather than whichever stationary point is closest
	f := cosLog{}

	result, err := OptimizeObjGrad2(f, 8.8, testSettings(), NewGuardedNewton(0))
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	grad, _ := f.Grad2(result.Loc)
	if math.Abs(grad) > 1e-6 {
		t.Errorf("not at a stationary point: g'(%v) = %v", result.Loc, grad)
	}
	_, curv := f.Grad2(result.Loc)
	if curv <= 0 {
		t.Errorf("converged to a non-minimum: g''(%v) = %v", result.Loc, curv)
	}
}
