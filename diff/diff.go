// Package diff provides central finite-difference estimates of the first
// and second derivatives of a scalar function. The estimators are
// independent sanity checks for hand-written derivatives; Numeric adapts a
// plain objective to the derivative interfaces the solvers expect.
package diff

import "math"

// DefaultStep is the default central-difference step, the cube root of
// machine epsilon. It balances truncation error against rounding error for
// the first-derivative stencil near |x| = 1.
var DefaultStep = math.Cbrt(math.Nextafter(1, 2) - 1)

// Central returns the central-difference estimate (f(x+h) − f(x−h)) / 2h
// of f'(x). The truncation error is O(h²).
func Central(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Central2 returns the three-point central-difference estimate
// (f(x+h) − 2f(x) + f(x−h)) / h² of f″(x). The truncation error is O(h²),
// but rounding error grows like 1/h², so h should not be taken too small.
func Central2(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}

// Numeric wraps a plain scalar function so that it satisfies the
// univariate solver interfaces, with the derivatives estimated by central
// differences. Each Grad2 call costs three function evaluations.
type Numeric struct {
	F func(float64) float64

	// Step is the difference step. Zero means DefaultStep.
	Step float64
}

func (n Numeric) h() float64 {
	if n.Step != 0 {
		return n.Step
	}
	return DefaultStep
}

func (n Numeric) Obj(x float64) float64 {
	return n.F(x)
}

func (n Numeric) Grad2(x float64) (grad, curv float64) {
	h := n.h()
	fp := n.F(x + h)
	fm := n.F(x - h)
	f0 := n.F(x)
	grad = (fp - fm) / (2 * h)
	curv = (fp - 2*f0 + fm) / (h * h)
	return grad, curv
}
