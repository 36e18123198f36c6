package cheb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitAccuracy(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(3 * x) }
	a := Fit(f, 30)
	require.Len(t, a, 30)

	var maxErr float64
	for i := 0; i <= 1000; i++ {
		x := -1 + 2*float64(i)/1000
		if err := math.Abs(Eval(a, x) - f(x)); err > maxErr {
			maxErr = err
		}
	}
	require.Less(t, maxErr, 1e-6)
}

func TestFitRoundTrip(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) * math.Sin(2*x) }
	n := 24
	a := Fit(f, n)

	// The fit interpolates at the sample nodes, so evaluating there must
	// reproduce the function to near machine precision
	for k := 0; k < n; k++ {
		x := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		require.InDelta(t, f(x), Eval(a, x), 1e-12)
	}
}

func TestEvalAll(t *testing.T) {
	a := Fit(math.Sin, 16)
	xs := []float64{-1, -0.3, 0, 0.72, 1}

	got := EvalAll(nil, a, xs)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		require.Equal(t, Eval(a, x), got[i])
	}

	dst := make([]float64, len(xs))
	require.Equal(t, got, EvalAll(dst, a, xs))
}

func TestEvalShort(t *testing.T) {
	require.Equal(t, 0.0, Eval(nil, 0.5))
	require.Equal(t, 3.0, Eval([]float64{3}, 0.5))
	require.InDelta(t, 3.0+2*0.5, Eval([]float64{3, 2}, 0.5), 1e-15)
}

func TestDeriv(t *testing.T) {
	a := Fit(math.Sin, 20)
	b := Deriv(a)
	require.Len(t, b, 19)

	for i := 0; i <= 200; i++ {
		x := -1 + 2*float64(i)/200
		require.InDelta(t, math.Cos(x), Eval(b, x), 1e-8)
	}
}

func TestDerivLowDegree(t *testing.T) {
	// d/dx (5 + 2·T_1 + T_2) = 2 + 4x
	b := Deriv([]float64{5, 2, 1})
	require.Len(t, b, 2)
	require.InDelta(t, 2.0, b[0], 1e-15)
	require.InDelta(t, 4.0, b[1], 1e-15)

	require.Empty(t, Deriv([]float64{7}))
}

func TestZerosExact(t *testing.T) {
	// x³ − x = T_3/4 − T_1/4, roots −1, 0, 1
	roots := Zeros([]float64{0, -0.25, 0, 0.25})
	require.Len(t, roots, 3)
	require.InDelta(t, -1, roots[0], 1e-10)
	require.InDelta(t, 0, roots[1], 1e-10)
	require.InDelta(t, 1, roots[2], 1e-10)
}

func TestZerosFromFit(t *testing.T) {
	// A fit of higher degree than the function leaves rounding-level
	// trailing coefficients; the rootfinder has to shrug those off
	f := func(x float64) float64 { return x*x*x - x }
	roots := Zeros(Fit(f, 12))
	require.Len(t, roots, 3)
	require.InDelta(t, -1, roots[0], 1e-8)
	require.InDelta(t, 0, roots[1], 1e-8)
	require.InDelta(t, 1, roots[2], 1e-8)
}

func TestZerosNone(t *testing.T) {
	// x² + 2 has no real roots at all
	roots := Zeros(Fit(func(x float64) float64 { return x*x + 2 }, 8))
	require.Empty(t, roots)

	// Constants have no colleague matrix
	require.Empty(t, Zeros([]float64{4}))
	require.Empty(t, Zeros(nil))
}

func TestZerosLinear(t *testing.T) {
	roots := Zeros(Fit(func(x float64) float64 { return 2*x - 1 }, 6))
	require.Len(t, roots, 1)
	require.InDelta(t, 0.5, roots[0], 1e-10)
}
