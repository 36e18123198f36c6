package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/uniopt/uniopt/common"
)

// ErrNotConverged is returned by the Optimize drivers when the run ends
// with a failure status (iteration cap, evaluation cap, runtime cap, or an
// optimizer-specific breakdown). The returned Result is still valid and
// holds the last accepted point.
var ErrNotConverged = errors.New("univariate: optimizer did not converge")

// GradFreeOptimizer represents an optimizer that uses only objective values
type GradFreeOptimizer interface {
	Init(f Objective, initLoc, initObj float64) error
	Status() common.Status
	// The loc and obj are what are passed to convergence. The helper provides
	// the tolerance checks on them
	Iterate() (loc float64, obj float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Grad2Optimizer represents a stationary-point solver driven by the first
// and second derivatives of the objective
type Grad2Optimizer interface {
	Init(df Grad2er, initLoc, initGrad, initCurv float64) error
	Status() common.Status
	Iterate() (loc float64, grad float64, nFunEvals int, err error)
	Result()
}

// ObjGrad2Optimizer represents a stationary-point solver that additionally
// consults the objective value, for example to enforce descent
type ObjGrad2Optimizer interface {
	Init(f ObjGrad2er, initLoc, initObj, initGrad, initCurv float64) error
	Status() common.Status
	Iterate() (loc float64, obj float64, grad float64, nFunEvals int, err error)
	Result()
}

// GradFreeWrapper is a convenience wrapper around a gradient-free algorithm that
// allows more fine-grained control over optimization progress. See OptimizeGradFree
// for example usage
type GradFreeWrapper struct {
	optimizer GradFreeOptimizer
	helper    *Helper
}

func NewGradFreeWrapper(optimizer GradFreeOptimizer) *GradFreeWrapper {
	return &GradFreeWrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *GradFreeWrapper) Init(settings *Settings, fun Objective, initLoc float64) error {

	initObj := settings.InitialObjective
	if math.IsNaN(initObj) {
		initObj = fun.Obj(initLoc)
	}

	g.helper.Init(settings, fun, initLoc, initObj, math.Inf(1))
	return g.optimizer.Init(fun, initLoc, initObj)
}

func (g *GradFreeWrapper) Status() common.Status {
	return common.CheckStatus(g.helper, g.optimizer)
}

func (g *GradFreeWrapper) Iterate() (loc, obj float64, err error) {
	var nFunEvals int
	loc, obj, nFunEvals, err = g.optimizer.Iterate()
	if err != nil {
		return loc, obj, errors.New("error iterating optimizer: " + err.Error())
	}
	// Give a bogus value to the gradient
	g.helper.Iterate(loc, obj, math.Inf(1), nFunEvals)
	return loc, obj, nil
}

func (g *GradFreeWrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status)
}

// OptimizeGradFree optimizes a function using only its objective values
func OptimizeGradFree(f Objective, initLoc float64, settings *Settings, optimizer GradFreeOptimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewGradFreeWrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return finish(wrapper.Result(status), status)
}

// Grad2Wrapper is a convenience wrapper around a derivative-based
// stationary-point solver that allows more fine-grained control over
// optimization progress
type Grad2Wrapper struct {
	optimizer Grad2Optimizer
	helper    *Helper
}

func NewGrad2Wrapper(optimizer Grad2Optimizer) *Grad2Wrapper {
	return &Grad2Wrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *Grad2Wrapper) Init(settings *Settings, df Grad2er, initLoc float64) error {

	initGrad := settings.InitialGradient
	initCurv := settings.InitialCurvature
	if math.IsNaN(initGrad) || math.IsNaN(initCurv) {
		initGrad, initCurv = df.Grad2(initLoc)
	}

	// Stationary-point solvers never see the objective value
	g.helper.Init(settings, df, initLoc, math.NaN(), initGrad)
	return g.optimizer.Init(df, initLoc, initGrad, initCurv)
}

func (g *Grad2Wrapper) Status() common.Status {
	return common.CheckStatus(g.helper, g.optimizer)
}

func (g *Grad2Wrapper) Iterate() (loc, grad float64, err error) {
	var nFunEvals int
	loc, grad, nFunEvals, err = g.optimizer.Iterate()
	if err != nil {
		return loc, grad, errors.New("error iterating optimizer: " + err.Error())
	}
	// Give a bogus value to the objective
	g.helper.Iterate(loc, math.NaN(), grad, nFunEvals)
	return loc, grad, nil
}

func (g *Grad2Wrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status)
}

// OptimizeGrad2 finds a stationary point of the function whose first and
// second derivatives are given by df. Note that a stationary point can be a
// maximum or a saddle as well as a minimum; the solver does not distinguish
func OptimizeGrad2(df Grad2er, initLoc float64, settings *Settings, optimizer Grad2Optimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewGrad2Wrapper(optimizer)

	err := wrapper.Init(settings, df, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return finish(wrapper.Result(status), status)
}

// ObjGrad2Wrapper is a convenience wrapper around a descent-enforcing
// stationary-point solver that allows more fine-grained control over
// optimization progress
type ObjGrad2Wrapper struct {
	optimizer ObjGrad2Optimizer
	helper    *Helper
}

func NewObjGrad2Wrapper(optimizer ObjGrad2Optimizer) *ObjGrad2Wrapper {
	return &ObjGrad2Wrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *ObjGrad2Wrapper) Init(settings *Settings, fun ObjGrad2er, initLoc float64) error {

	initObj := settings.InitialObjective
	initGrad := settings.InitialGradient
	initCurv := settings.InitialCurvature
	if math.IsNaN(initObj) {
		initObj = fun.Obj(initLoc)
	}
	if math.IsNaN(initGrad) || math.IsNaN(initCurv) {
		initGrad, initCurv = fun.Grad2(initLoc)
	}

	g.helper.Init(settings, fun, initLoc, initObj, initGrad)
	return g.optimizer.Init(fun, initLoc, initObj, initGrad, initCurv)
}

func (g *ObjGrad2Wrapper) Status() common.Status {
	return common.CheckStatus(g.helper, g.optimizer)
}

func (g *ObjGrad2Wrapper) Iterate() (loc, obj, grad float64, err error) {
	var nFunEvals int
	loc, obj, grad, nFunEvals, err = g.optimizer.Iterate()
	if err != nil {
		return loc, obj, grad, errors.New("error iterating optimizer: " + err.Error())
	}
	g.helper.Iterate(loc, obj, grad, nFunEvals)
	return loc, obj, grad, nil
}

func (g *ObjGrad2Wrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status)
}

// OptimizeObjGrad2 finds a stationary point of f while enforcing that the
// accepted objective values decrease
func OptimizeObjGrad2(f ObjGrad2er, initLoc float64, settings *Settings, optimizer ObjGrad2Optimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewObjGrad2Wrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return finish(wrapper.Result(status), status)
}

// finish converts a failure status into ErrNotConverged while keeping the
// result available to the caller
func finish(r *Result, status common.Status) (*Result, error) {
	if status < 0 {
		return r, fmt.Errorf("%w: %v", ErrNotConverged, status)
	}
	return r, nil
}
