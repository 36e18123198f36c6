package univariate

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/uniopt/uniopt/common"
)

func TestParabolicQuadratic(t *testing.T) {
	q := quadratic{b: 2, c: 1}

	// The parabola through any three points of a quadratic is the
	// quadratic itself, so the first vertex is already the minimizer
	result, err := OptimizeGradFree(q, 2.5, testSettings(), NewParabolic(0, 5, 1e-8))
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), 1e-8, 1e-8) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v. Status: %v", q.OptLoc(), result.Loc, result.Status)
	}
	if result.Iterations > 3 {
		t.Errorf("too many iterations for a quadratic: %v", result.Iterations)
	}
}

func TestParabolicSuperlinear(t *testing.T) {
	f := expLine{}
	tol := 1e-9

	var locs []float64
	optimizer := NewParabolic(0, 1, tol)
	optimizer.Monitor = func(a, b, c float64) {
		locs = append(locs, c)
	}

	result, err := OptimizeGradFree(f, 0.5, testSettings(), optimizer)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, f.OptLoc(), 1e-6, 1e-6) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v. Status: %v", f.OptLoc(), result.Loc, result.Status)
	}

	// Superlinear convergence reaches a 1e-9 window in a handful of steps;
	// a linear method at the golden ratio would need about 45
	if result.Iterations > 15 {
		t.Errorf("convergence too slow for parabolic interpolation: %d iterations", result.Iterations)
	}

	// Once inside the basin the error should contract faster each step
	var errs []float64
	for _, c := range locs {
		if e := math.Abs(c - f.OptLoc()); e > 0 {
			errs = append(errs, e)
		}
	}
	improving := 0
	for i := 2; i < len(errs); i++ {
		if errs[i] < errs[i-1]*errs[i-1]/errs[i-2] {
			improving++
		}
	}
	if len(errs) > 4 && improving == 0 {
		t.Error("no evidence of superlinear contraction in the iterate errors")
	}
}

func TestParabolicDegenerate(t *testing.T) {
	// An affine objective has zero second divided difference. The vertex
	// formula divides by it, unguarded, and the run must surface that as a
	// failure rather than hang or return a bogus location
	s := testSettings()
	s.MaximumIterations = 50

	result, err := OptimizeGradFree(line{}, 0.5, s, NewParabolic(0, 1, 1e-8))
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected ErrNotConverged, got %v", err)
	}
	if result.Status != common.DegenerateCurvature && result.Status != common.MaximumIterations {
		t.Errorf("unexpected status: %v", result.Status)
	}
}
