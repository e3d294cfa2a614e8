package script

import (
	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

// registerBinary installs the two-operand functions. Scalars precede the
// optional broadcast order, which only matters for the vector-matrix forms.
func (e *Env) registerBinary() {
	e.vm.Set("axpy", func(call otto.FunctionCall) otto.Value {
		x, y := e.operand(call, 0), e.operand(call, 1)
		alpha, i := e.scalarOpt(call, 2, 1)
		if err := linear.Axpy(x, y, e.orderOpt(call, i), alpha); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("axpby", func(call otto.FunctionCall) otto.Value {
		x, y := e.operand(call, 0), e.operand(call, 1)
		alpha, i := e.scalarOpt(call, 2, 1)
		beta, i := e.scalarOpt(call, i, 0)
		if err := linear.Axpby(x, y, e.orderOpt(call, i), alpha, beta); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("mul", func(call otto.FunctionCall) otto.Value {
		x, y := e.operand(call, 0), e.operand(call, 1)
		alpha, i := e.scalarOpt(call, 2, 1)
		if err := linear.MulElem(x, y, e.orderOpt(call, i), alpha); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("swap", func(call otto.FunctionCall) otto.Value {
		if err := linear.Swap(e.operand(call, 0), e.operand(call, 1), e.orderOpt(call, 2)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("copy", func(call otto.FunctionCall) otto.Value {
		if err := linear.Copy(e.operand(call, 0), e.operand(call, 1), e.orderOpt(call, 2)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
}

// scalarOpt reads an optional number at i, returning the index the next
// argument starts at. A string at i is left for the order parser.
func (e *Env) scalarOpt(call otto.FunctionCall, i int, def float64) (float64, int) {
	v := call.Argument(i)
	if !v.IsNumber() {
		return def, i
	}
	f, _ := v.ToFloat()
	return f, i + 1
}
