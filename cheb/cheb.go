// Package cheb approximates functions by Chebyshev expansions on [-1, 1]
// and provides the operations a polynomial surrogate needs: evaluation,
// differentiation, and real rootfinding through the colleague-matrix
// eigenproblem. Approx carries the same pipeline on an arbitrary interval
// and composes it into a global minimizer.
package cheb

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Fit samples f at the n Chebyshev nodes x_k = cos(π(k+1/2)/n) and returns
// the n coefficients of the interpolating expansion
//
//	p(x) = a[0] + a[1]·T_1(x) + … + a[n-1]·T_{n-1}(x)
//
// using the three-term recurrence T_{j+1} = 2x·T_j − T_{j-1}. For smooth f
// the coefficients decay rapidly and p is an accurate surrogate on [-1, 1].
func Fit(f func(float64) float64, n int) []float64 {
	a := make([]float64, n)
	for k := 0; k < n; k++ {
		x := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		fx := f(x)

		tprev, t := 1.0, x
		for j := 0; j < n; j++ {
			a[j] += fx * tprev
			tprev, t = t, 2*x*t-tprev
		}
	}

	a[0] /= float64(n)
	for j := 1; j < n; j++ {
		a[j] *= 2 / float64(n)
	}
	return a
}

// Eval evaluates the expansion with coefficients a at x by the forward
// recurrence.
func Eval(a []float64, x float64) float64 {
	if len(a) == 0 {
		return 0
	}
	if len(a) == 1 {
		return a[0]
	}

	s := a[0] + a[1]*x
	tprev, t := x, 2*x*x-1
	for k := 2; k < len(a); k++ {
		s += a[k] * t
		tprev, t = t, 2*x*t-tprev
	}
	return s
}

// EvalAll evaluates the expansion at every point of xs, storing the results
// in dst, which is allocated if nil. It returns dst.
func EvalAll(dst, a, xs []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(xs))
	}
	if len(dst) != len(xs) {
		panic("cheb: length mismatch")
	}
	for i, x := range xs {
		dst[i] = Eval(a, x)
	}
	return dst
}

// Deriv returns the coefficients of the derivative of the expansion with
// coefficients a. The derivative of a degree n−1 expansion has degree n−2,
// so the result has one coefficient fewer. The backward recurrence
//
//	b[k] = 2(k+1)·a[k+1] + b[k+2]
//
// with the final halving of b[0] is the Chebyshev differentiation identity.
func Deriv(a []float64) []float64 {
	n := len(a)
	if n <= 1 {
		return []float64{}
	}

	b := make([]float64, n-1)
	for k := n - 2; k >= 0; k-- {
		b[k] = 2 * float64(k+1) * a[k+1]
		if k+2 < n-1 {
			b[k] += b[k+2]
		}
	}
	b[0] /= 2
	return b
}

// trailingTol is the relative threshold below which trailing coefficients
// are treated as zero when building the colleague matrix. Without the trim
// a fit of a low-degree function leaves rounding-level leading coefficients
// that the matrix divides by.
const trailingTol = 1e-13

// Zeros returns the real roots of the expansion with coefficients a that
// lie in [-1, 1], sorted in increasing order. The roots are computed as the
// eigenvalues of the colleague matrix of the expansion; complex eigenvalues
// and real ones outside the interval are discarded. The result is empty
// when the expansion has no real roots in the interval or is constant.
func Zeros(a []float64) []float64 {
	// Trim rounding-level trailing coefficients
	var amax float64
	for _, v := range a {
		if math.Abs(v) > amax {
			amax = math.Abs(v)
		}
	}
	m := len(a) - 1
	for m > 0 && math.Abs(a[m]) <= trailingTol*amax {
		m--
	}
	if m < 1 {
		return nil
	}

	// Colleague matrix: the multiplication-by-x operator on the expansion
	// basis, with T_m eliminated through the coefficients. Its eigenvalues
	// are the roots of the expansion.
	A := mat.NewDense(m, m, nil)
	if m == 1 {
		A.Set(0, 0, -2*a[0]/a[1])
	} else {
		A.Set(0, 1, 2)
		for k := 1; k < m-1; k++ {
			A.Set(k, k-1, 1)
			A.Set(k, k+1, 1)
		}
		for j := 0; j < m; j++ {
			A.Set(m-1, j, -a[j]/a[m])
		}
		A.Set(m-1, m-2, A.At(m-1, m-2)+1)
	}
	A.Scale(0.5, A)

	var eig mat.Eigen
	if ok := eig.Factorize(A, mat.EigenNone); !ok {
		return nil
	}

	// Genuinely real roots of an asymmetric colleague matrix come back
	// with rounding-level imaginary parts, so realness and the interval
	// test both carry a small slack.
	var roots []float64
	for _, v := range eig.Values(nil) {
		re, im := real(v), imag(v)
		if math.Abs(im) > 1e-12*math.Max(1, math.Abs(re)) {
			continue
		}
		if re < -1-1e-12 || re > 1+1e-12 {
			continue
		}
		roots = append(roots, math.Max(-1, math.Min(1, re)))
	}
	sort.Float64s(roots)
	return roots
}
