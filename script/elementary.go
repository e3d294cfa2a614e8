package script

import (
	"math"

	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

// registerElementary installs the in-place elementary functions. Each accepts
// a plain number as well, in which case the transformed number is returned
// instead of mutating an operand.
func (e *Env) registerElementary() {
	e.vm.Set("inc", func(call otto.FunctionCall) otto.Value {
		alpha := e.floatOpt(call, 1, 1)
		return e.inPlace(call, func(v float64) float64 { return v + alpha },
			func(x linear.Operand) error { return linear.Shift(x, alpha) })
	})
	e.vm.Set("scal", func(call otto.FunctionCall) otto.Value {
		alpha := e.floatOpt(call, 1, 1)
		return e.inPlace(call, func(v float64) float64 { return v * alpha },
			func(x linear.Operand) error { return linear.Scale(x, alpha) })
	})
	e.vm.Set("pow", func(call otto.FunctionCall) otto.Value {
		alpha := e.floatOpt(call, 1, 1)
		return e.inPlace(call, func(v float64) float64 { return math.Pow(v, alpha) },
			func(x linear.Operand) error { return linear.Pow(x, alpha) })
	})
	e.vm.Set("exp", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, math.Exp, linear.Exp)
	})
	e.vm.Set("log", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, math.Log, linear.Log)
	})
	e.vm.Set("sgn", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, linear.SgnOf, linear.Sgn)
	})
	e.vm.Set("abs", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, math.Abs, linear.Abs)
	})
	e.vm.Set("logistic", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, linear.LogisticOf, linear.Logistic)
	})
	e.vm.Set("tanh", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, math.Tanh, linear.Tanh)
	})
	e.vm.Set("softplus", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, linear.SoftplusOf, linear.Softplus)
	})
	e.vm.Set("rectifier", func(call otto.FunctionCall) otto.Value {
		return e.inPlace(call, linear.RectifierOf, linear.Rectifier)
	})
	e.vm.Set("fill", func(call otto.FunctionCall) otto.Value {
		if err := linear.SetAll(e.operand(call, 0), e.floatOpt(call, 1, 0)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("uniform", func(call otto.FunctionCall) otto.Value {
		if err := linear.Uniform(e.operand(call, 0)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("normal", func(call otto.FunctionCall) otto.Value {
		if err := linear.Normal(e.operand(call, 0)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("apply", func(call otto.FunctionCall) otto.Value {
		x := e.operand(call, 0)
		fn := call.Argument(1)
		if !fn.IsFunction() {
			return e.throw("bad argument #2: function expected")
		}
		var cbErr error
		err := linear.Apply(x, func(v float64) float64 {
			if cbErr != nil {
				return v
			}
			res, err := fn.Call(otto.UndefinedValue(), v)
			if err != nil {
				cbErr = err
				return v
			}
			f, _ := res.ToFloat()
			return f
		})
		if cbErr != nil {
			return e.fail(cbErr)
		}
		if err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
}

// inPlace dispatches an elementary function over a number or an operand.
func (e *Env) inPlace(call otto.FunctionCall, scalar func(float64) float64, op func(linear.Operand) error) otto.Value {
	arg := call.Argument(0)
	if arg.IsNumber() {
		f, _ := arg.ToFloat()
		return e.value(scalar(f))
	}
	if err := op(e.operand(call, 0)); err != nil {
		return e.fail(err)
	}
	return otto.UndefinedValue()
}
