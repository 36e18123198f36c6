package univariate

import (
	"math"

	"github.com/uniopt/uniopt/common"
	"github.com/uniopt/uniopt/write"
)

type Objective interface {
	Obj(x float64) float64
}

// Grad2er computes the first and second derivatives of the objective.
// Solvers that hunt stationary points need both.
type Grad2er interface {
	Grad2(x float64) (grad, curv float64)
}

// ObjGrad2er is the input to solvers that need the objective value as well
// as its derivatives, such as the descent-guarded Newton iteration.
type ObjGrad2er interface {
	Objective
	Grad2er
}

// Settings is a structure containing settings for univariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	*common.SingleOutputSettings
	// LocTol stops the optimization when the distance between successive
	// accepted locations falls below it. Negative means no check.
	LocTol           float64
	InitialObjective float64 // The value of the objective function at the initial location
	InitialGradient  float64 // The value of the gradient at the initial location
	InitialCurvature float64 // The value of the second derivative at the initial location
}

// DefaultSettings returns the default settings for univariate optimizers.
// The default behavior is to run the optimizer until convergence. If it is desired
// that it end earlier, consider changing MaximumIterations, MaximumFunctionEvaluations,
// and MaximumRuntime
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:       common.DefaultCommonSettings(),
		SingleOutputSettings: common.DefaultSingleOutputSettings(),
		LocTol:               -1,
		InitialObjective:     math.NaN(),
		InitialGradient:      math.NaN(),
		InitialCurvature:     math.NaN(),
	}
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check tolerances. At the end of every iteration should call
// Iterate()
type Helper struct {
	*common.Common
	*common.SingleOutput

	locTol float64

	objCurr  float64
	gradCurr float64
	locCurr  float64
	locPrev  float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common:       common.NewCommon(),
		SingleOutput: common.NewSingleOutput(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	v = append(v, &write.Value{Heading: "Grad", Value: u.gradCurr})
	return v
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc, initObj, initGrad float64) {
	u.Common.Init(s.CommonSettings, objectiveFunction)
	u.SingleOutput.Init(s.SingleOutputSettings, initObj, math.Abs(initGrad))

	u.locTol = s.LocTol

	u.objCurr = initObj
	u.gradCurr = initGrad
	u.locCurr = initLoc
	u.locPrev = math.NaN()
}

func (u *Helper) Iterate(loc, obj, grad float64, nFunEvals int) {
	u.Common.Iterate(nFunEvals)
	u.SingleOutput.Iterate(math.Abs(grad), obj)

	u.locPrev = u.locCurr
	u.locCurr = loc
	u.objCurr = obj
	u.gradCurr = grad
}

func (u *Helper) Status() common.Status {
	status := u.SingleOutput.Status()
	if status != common.Continue {
		return status
	}
	// A zero move is a rejected proposal, not convergence
	if d := math.Abs(u.locCurr - u.locPrev); u.locTol > 0 && d > 0 && d < u.locTol {
		return common.LocChangeTol
	}
	status = u.Common.Status()
	if status != common.Continue {
		return status
	}
	return common.Continue
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Obj:          u.objCurr,
		Loc:          u.locCurr,
		Grad:         u.gradCurr,
	}
}

type Result struct {
	*common.CommonResult
	Obj  float64 // Lowest found value of the objective function (may not be a minimum from early convergence)
	Loc  float64 // Location where Obj was obtained
	Grad float64 // Gradient where Obj was obtained
}
