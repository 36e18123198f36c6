// Command uniopt demonstrates the solvers on the running example
// cos(x)·log(x), a multimodal function on the positive axis. Each
// subcommand prints the iteration trace of one method; the cheb subcommand
// can additionally plot the surrogate against the function.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniopt/uniopt/cheb"
	"github.com/uniopt/uniopt/univariate"
	"github.com/uniopt/uniopt/write"
)

// cosLog is the demo objective cos(x)·log(x) with analytic derivatives.
type cosLog struct{}

func (cosLog) Obj(x float64) float64 {
	return math.Cos(x) * math.Log(x)
}

func (cosLog) Grad2(x float64) (grad, curv float64) {
	sin, cos := math.Sincos(x)
	log := math.Log(x)
	grad = -sin*log + cos/x
	curv = -cos*log - 2*sin/x - cos/(x*x)
	return grad, curv
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uniopt",
		Short:         "One-dimensional optimization demos on cos(x)·log(x)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newNewtonCmd(),
		newGoldenCmd(),
		newSPICmd(),
		newChebCmd(),
	)
	return cmd
}

// demoSettings silences the periodic display so the monitor output is the
// only trace, and applies the shared solver knobs.
func demoSettings(dtol, atol float64, nsteps int) *univariate.Settings {
	s := univariate.DefaultSettings()
	s.WriteSettings = &write.WriteSettings{}
	s.GradAbsTol = dtol
	s.LocTol = atol
	s.MaximumIterations = nsteps
	return s
}

func newNewtonCmd() *cobra.Command {
	var (
		x0      float64
		dtol    float64
		atol    float64
		nsteps  int
		guarded bool
	)
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Newton iteration for a stationary point",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cosLog{}
			settings := demoSettings(dtol, atol, nsteps)

			var result *univariate.Result
			var err error
			iter := 0
			monitor := func(x float64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  x = %.12f  g = %.12f\n", iter, x, f.Obj(x))
				iter++
			}

			if guarded {
				opt := univariate.NewGuardedNewton(atol)
				opt.Monitor = monitor
				result, err = univariate.OptimizeObjGrad2(f, x0, settings, opt)
			} else {
				opt := univariate.NewNewton(atol)
				opt.Monitor = monitor
				result, err = univariate.OptimizeGrad2(f, x0, settings, opt)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stationary point %.12f after %d iterations (%v)\n",
				result.Loc, result.Iterations, result.Status)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x0, "x0", 9.0, "initial guess")
	cmd.Flags().Float64Var(&dtol, "dtol", 1e-8, "derivative magnitude tolerance")
	cmd.Flags().Float64Var(&atol, "atol", 1e-10, "step size tolerance")
	cmd.Flags().IntVar(&nsteps, "nsteps", 100, "iteration cap")
	cmd.Flags().BoolVar(&guarded, "guarded", false, "enforce descent with backtracking")
	return cmd
}

func newGoldenCmd() *cobra.Command {
	var (
		a, b float64
		atol float64
	)
	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Golden-section search over a bracket",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cosLog{}
			settings := demoSettings(1e-8, -1, -1)

			opt := univariate.NewGoldenSection(a, b, atol)
			iter := 0
			opt.Monitor = func(lo, hi float64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  bracket [%.9f, %.9f]  width %.3e\n", iter, lo, hi, hi-lo)
				iter++
			}

			result, err := univariate.OptimizeGradFree(f, (a+b)/2, settings, opt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "minimizer %.12f, f = %.12f (%d evaluations)\n",
				result.Loc, f.Obj(result.Loc), result.FunctionEvaluations)
			return nil
		},
	}
	cmd.Flags().Float64Var(&a, "a", 8, "left end of the bracket")
	cmd.Flags().Float64Var(&b, "b", 11, "right end of the bracket")
	cmd.Flags().Float64Var(&atol, "atol", 1e-8, "absolute tolerance on the minimizer")
	return cmd
}

func newSPICmd() *cobra.Command {
	var (
		a, b   float64
		atol   float64
		nsteps int
	)
	cmd := &cobra.Command{
		Use:   "spi",
		Short: "Successive parabolic interpolation",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cosLog{}
			settings := demoSettings(1e-8, -1, nsteps)

			opt := univariate.NewParabolic(a, b, atol)
			iter := 0
			opt.Monitor = func(x1, x2, x3 float64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  window (%.9f, %.9f, %.9f)\n", iter, x1, x2, x3)
				iter++
			}

			result, err := univariate.OptimizeGradFree(f, (a+b)/2, settings, opt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stationary point %.12f, f = %.12f after %d iterations\n",
				result.Loc, f.Obj(result.Loc), result.Iterations)
			return nil
		},
	}
	cmd.Flags().Float64Var(&a, "a", 9, "first starting point")
	cmd.Flags().Float64Var(&b, "b", 10, "second starting point")
	cmd.Flags().Float64Var(&atol, "atol", 1e-9, "tolerance on successive iterates")
	cmd.Flags().IntVar(&nsteps, "nsteps", 50, "iteration cap")
	return cmd
}

func newChebCmd() *cobra.Command {
	var (
		a, b     float64
		degree   int
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "cheb",
		Short: "Global minimization through a Chebyshev surrogate",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cosLog{}

			p, err := cheb.Approximate(f.Obj, a, b, degree)
			if err != nil {
				return err
			}

			minX, minF := p.Minimize()
			fmt.Fprintf(cmd.OutOrStdout(), "surrogate minimum at %.9f, value %.9f (true value %.9f)\n",
				minX, minF, f.Obj(minX))

			for _, root := range p.Deriv().Zeros() {
				fmt.Fprintf(cmd.OutOrStdout(), "  critical point %.9f  f = %.9f\n", root, p.Eval(root))
			}

			// Cross-check against a golden-section search in the basin
			// around the surrogate minimizer
			lo, hi := math.Max(a, minX-1), math.Min(b, minX+1)
			settings := demoSettings(1e-8, -1, -1)
			opt := univariate.NewGoldenSection(lo, hi, 1e-9)
			result, err := univariate.OptimizeGradFree(f, minX, settings, opt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "golden-section check: %.9f, value %.9f\n",
				result.Loc, f.Obj(result.Loc))

			if plotPath != "" {
				if err := savePlot(plotPath, f.Obj, p, minX, minF); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", plotPath)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&a, "a", 0.5, "left end of the interval")
	cmd.Flags().Float64Var(&b, "b", 5*math.Pi, "right end of the interval")
	cmd.Flags().IntVar(&degree, "degree", 40, "number of Chebyshev nodes")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a PNG comparing function and surrogate")
	return cmd
}
