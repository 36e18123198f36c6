package cheb

import (
	"errors"
	"math"
)

// Approx is a Chebyshev expansion fitted to a function on an interval
// [A, B], through the affine map between the interval and the canonical
// domain [-1, 1].
type Approx struct {
	A, B   float64
	Coeffs []float64
}

// Approximate fits f on [a, b] with n Chebyshev nodes. The accuracy of the
// surrogate is bounded by the approximation error of the fit; for a given
// f and interval it should be checked against a held-out sample before the
// surrogate is trusted.
func Approximate(f func(float64) float64, a, b float64, n int) (*Approx, error) {
	if !(a < b) {
		return nil, errors.New("cheb: interval is not an interval")
	}
	if n < 1 {
		return nil, errors.New("cheb: need at least one node")
	}
	p := &Approx{A: a, B: b}
	p.Coeffs = Fit(func(u float64) float64 {
		return f(p.fromUnit(u))
	}, n)
	return p, nil
}

func (p *Approx) fromUnit(u float64) float64 {
	return (p.A+p.B)/2 + u*(p.B-p.A)/2
}

func (p *Approx) toUnit(x float64) float64 {
	return (2*x - p.A - p.B) / (p.B - p.A)
}

// Eval evaluates the surrogate at x in [A, B].
func (p *Approx) Eval(x float64) float64 {
	return Eval(p.Coeffs, p.toUnit(x))
}

// Deriv returns the surrogate of the derivative, with the chain-rule
// factor from the interval map applied.
func (p *Approx) Deriv() *Approx {
	b := Deriv(p.Coeffs)
	scale := 2 / (p.B - p.A)
	for i := range b {
		b[i] *= scale
	}
	return &Approx{A: p.A, B: p.B, Coeffs: b}
}

// Zeros returns the real roots of the surrogate inside [A, B], sorted.
func (p *Approx) Zeros() []float64 {
	us := Zeros(p.Coeffs)
	xs := make([]float64, len(us))
	for i, u := range us {
		xs[i] = p.fromUnit(u)
	}
	return xs
}

// Minimize returns the global minimizer of the surrogate over [A, B] along
// with the surrogate value there. The candidates are the real roots of the
// surrogate's derivative plus the two endpoints, so boundary minima are
// found as well as interior ones. How closely the result tracks the
// minimum of the underlying function is limited by the fit error.
func (p *Approx) Minimize() (x, fx float64) {
	candidates := append(p.Deriv().Zeros(), p.A, p.B)

	x = candidates[0]
	fx = math.Inf(1)
	for _, c := range candidates {
		if v := p.Eval(c); v < fx {
			x, fx = c, v
		}
	}
	return x, fx
}
