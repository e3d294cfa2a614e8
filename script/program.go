package script

import (
	"strings"

	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

// registerProgram installs the BLAS/LAPACK level functions.
func (e *Env) registerProgram() {
	e.vm.Set("dot", func(call otto.FunctionCall) otto.Value {
		r, err := linear.Dot(e.vectorArg(call, 0), e.vectorArg(call, 1))
		if err != nil {
			return e.fail(err)
		}
		return e.value(r)
	})
	e.vm.Set("ger", func(call otto.FunctionCall) otto.Value {
		x, y, A := e.vectorArg(call, 0), e.vectorArg(call, 1), e.matrixArg(call, 2)
		if err := linear.Ger(x, y, A, e.floatOpt(call, 3, 1)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("gemv", func(call otto.FunctionCall) otto.Value {
		A, x, y := e.matrixArg(call, 0), e.vectorArg(call, 1), e.vectorArg(call, 2)
		trans := e.transOpt(call, 3)
		alpha := e.floatOpt(call, 4, 1)
		beta := e.floatOpt(call, 5, 0)
		if err := linear.Gemv(A, x, y, trans, alpha, beta); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("gemm", func(call otto.FunctionCall) otto.Value {
		A, B, C := e.matrixArg(call, 0), e.matrixArg(call, 1), e.matrixArg(call, 2)
		transA := e.transOpt(call, 3)
		transB := e.transOpt(call, 4)
		alpha := e.floatOpt(call, 5, 1)
		beta := e.floatOpt(call, 6, 0)
		if err := linear.Gemm(A, B, C, transA, transB, alpha, beta); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("gesv", func(call otto.FunctionCall) otto.Value {
		if err := linear.Gesv(e.matrixArg(call, 0), e.matrixArg(call, 1)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("gels", func(call otto.FunctionCall) otto.Value {
		if err := linear.Gels(e.matrixArg(call, 0), e.matrixArg(call, 1), e.transOpt(call, 2)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("inv", func(call otto.FunctionCall) otto.Value {
		if err := linear.Inv(e.matrixArg(call, 0)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("det", func(call otto.FunctionCall) otto.Value {
		r, err := linear.Det(e.matrixArg(call, 0))
		if err != nil {
			return e.fail(err)
		}
		return e.value(r)
	})
	e.vm.Set("cov", func(call otto.FunctionCall) otto.Value {
		A, B := e.matrixArg(call, 0), e.matrixArg(call, 1)
		if err := linear.Cov(A, B, e.intOpt(call, 2, 0)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("corr", func(call otto.FunctionCall) otto.Value {
		if err := linear.Corr(e.matrixArg(call, 0), e.matrixArg(call, 1)); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
}

// transOpt reads an optional transpose marker, "trans"/"t" or "notrans"/"n".
func (e *Env) transOpt(call otto.FunctionCall, i int) bool {
	v := call.Argument(i)
	if !v.IsDefined() {
		return false
	}
	s, _ := v.ToString()
	switch strings.ToLower(s) {
	case "trans", "t":
		return true
	case "notrans", "n":
		return false
	}
	e.throw("bad argument #%d: 'trans' or 'notrans' expected", i+1)
	return false
}
