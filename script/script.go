// Package script binds the linear core into a JavaScript environment.
//
// The binding follows the host convention of 1-based, inclusive indexing;
// translation to the core's 0-based API happens here and nowhere else.
// Values crossing the boundary are validated element by element, and
// malformed input is rejected with its 1-based position.
package script

import (
	"fmt"

	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

// Env is a JavaScript environment with the linear functions registered as
// globals. Vectors and matrices cross the boundary as opaque host values.
type Env struct {
	vm *otto.Otto
}

// New creates an environment and registers the function surface.
func New() *Env {
	e := &Env{vm: otto.New()}
	e.registerStructural()
	e.registerElementary()
	e.registerUnary()
	e.registerBinary()
	e.registerProgram()
	return e
}

// Run evaluates src and returns the resulting value.
func (e *Env) Run(src string) (otto.Value, error) {
	return e.vm.Run(src)
}

// VM exposes the underlying interpreter for host embedding.
func (e *Env) VM() *otto.Otto {
	return e.vm
}

// throw raises a JavaScript error from a native handler.
func (e *Env) throw(format string, args ...any) otto.Value {
	panic(e.vm.MakeCustomError("LinearError", fmt.Sprintf(format, args...)))
}

func (e *Env) fail(err error) otto.Value {
	return e.throw("%s", err)
}

func (e *Env) value(v any) otto.Value {
	val, err := e.vm.ToValue(v)
	if err != nil {
		return e.throw("cannot convert result: %s", err)
	}
	return val
}

// operand extracts argument i as a vector or matrix.
func (e *Env) operand(call otto.FunctionCall, i int) linear.Operand {
	v, err := call.Argument(i).Export()
	if err == nil {
		switch v := v.(type) {
		case *linear.Vector:
			return v
		case *linear.Matrix:
			return v
		}
	}
	e.throw("bad argument #%d: vector or matrix expected", i+1)
	return nil
}

func (e *Env) vectorArg(call otto.FunctionCall, i int) *linear.Vector {
	v, err := call.Argument(i).Export()
	if err == nil {
		if x, ok := v.(*linear.Vector); ok {
			return x
		}
	}
	e.throw("bad argument #%d: vector expected", i+1)
	return nil
}

func (e *Env) matrixArg(call otto.FunctionCall, i int) *linear.Matrix {
	v, err := call.Argument(i).Export()
	if err == nil {
		if m, ok := v.(*linear.Matrix); ok {
			return m
		}
	}
	e.throw("bad argument #%d: matrix expected", i+1)
	return nil
}

func (e *Env) intArg(call otto.FunctionCall, i int) int {
	v := call.Argument(i)
	if !v.IsNumber() {
		e.throw("bad argument #%d: number expected", i+1)
	}
	n, _ := v.ToInteger()
	return int(n)
}

func (e *Env) intOpt(call otto.FunctionCall, i, def int) int {
	if !call.Argument(i).IsDefined() {
		return def
	}
	return e.intArg(call, i)
}

func (e *Env) floatOpt(call otto.FunctionCall, i int, def float64) float64 {
	v := call.Argument(i)
	if !v.IsDefined() {
		return def
	}
	if !v.IsNumber() {
		e.throw("bad argument #%d: number expected", i+1)
	}
	f, _ := v.ToFloat()
	return f
}

// orderOpt reads an optional "row"/"col" argument, defaulting to row.
func (e *Env) orderOpt(call otto.FunctionCall, i int) linear.Order {
	v := call.Argument(i)
	if !v.IsDefined() {
		return linear.RowMajor
	}
	s, _ := v.ToString()
	order, err := linear.ParseOrder(s)
	if err != nil {
		e.throw("bad argument #%d: 'row' or 'col' expected", i+1)
	}
	return order
}
