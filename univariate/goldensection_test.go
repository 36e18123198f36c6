package univariate

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestGoldenSection(t *testing.T) {
	q := quadratic{b: 2, c: 1}
	tol := 1e-7

	optimizer := NewGoldenSection(0, 5, tol)
	result, err := OptimizeGradFree(q, 2.5, testSettings(), optimizer)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), tol, tol) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v. Status: %v", q.OptLoc(), result.Loc, result.Status)
	}

	// Minimum at the left of the bracket
	optimizer = NewGoldenSection(1.99, 14, tol)
	result, err = OptimizeGradFree(q, 8, testSettings(), optimizer)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(result.Loc, q.OptLoc(), tol, tol) {
		t.Errorf("location doesn't match. Expected: %v, Found: %v. Status: %v", q.OptLoc(), result.Loc, result.Status)
	}
}

func TestGoldenSectionBadBracket(t *testing.T) {
	q := quadratic{b: 2, c: 1}

	_, err := OptimizeGradFree(q, 0, testSettings(), NewGoldenSection(5, 0, 1e-7))
	if err == nil {
		t.Error("expected an error for a reversed bracket")
	}
}

// The bracket keeps the true minimizer inside it and contracts by 1/φ at
// every unequal-values step.
func TestGoldenSectionInvariants(t *testing.T) {
	q := quadratic{b: 2, c: 1}
	tol := 1e-7

	var widths []float64
	optimizer := NewGoldenSection(-1, 6, tol)
	optimizer.Monitor = func(a, b float64) {
		if a > q.OptLoc() || b < q.OptLoc() {
			t.Fatalf("minimizer escaped the bracket [%v, %v]", a, b)
		}
		widths = append(widths, b-a)
	}

	_, err := OptimizeGradFree(q, 2.5, testSettings(), optimizer)
	if err != nil {
		t.Fatalf("error optimizing: %v", err)
	}

	invPhi := 1 / math.Phi
	equalBranch := 2/math.Phi - 1
	for i := 1; i < len(widths); i++ {
		ratio := widths[i] / widths[i-1]
		if math.Abs(ratio-invPhi) > 1e-9 && math.Abs(ratio-equalBranch) > 1e-9 {
			t.Errorf("unexpected shrink ratio at step %d: %v", i, ratio)
		}
	}
	if len(widths) < 10 {
		t.Errorf("suspiciously few iterations: %d", len(widths))
	}
}
