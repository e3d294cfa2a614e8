package script

import (
	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

// registerUnary installs the reductions. The vector form returns a number;
// the matrix form reduces along the given order into a vector. Index-valued
// reductions report 1-based positions.
func (e *Env) registerUnary() {
	e.vm.Set("sum", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return linear.Sum(x), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.SumInto(X, y, ax)
		}, false, false))
	e.vm.Set("mean", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return linear.Mean(x), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.MeanInto(X, y, ax)
		}, false, false))
	// "var" is a reserved word; the host surface uses "variance".
	e.vm.Set("variance", e.reduction(linear.Var, linear.VarInto, true, false))
	e.vm.Set("std", e.reduction(linear.Std, linear.StdInto, true, false))
	e.vm.Set("nrm2", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return linear.Nrm2(x), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.Nrm2Into(X, y, ax)
		}, false, false))
	e.vm.Set("asum", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return linear.Asum(x), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.AsumInto(X, y, ax)
		}, false, false))
	e.vm.Set("iamax", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return float64(linear.Iamax(x) + 1), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.IamaxInto(X, y, ax)
		}, false, true))
	e.vm.Set("iamin", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return float64(linear.Iamin(x) + 1), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.IaminInto(X, y, ax)
		}, false, true))
	e.vm.Set("imax", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return float64(linear.Imax(x) + 1), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.ImaxInto(X, y, ax)
		}, false, true))
	e.vm.Set("imin", e.reduction(
		func(x *linear.Vector, _ int) (float64, error) { return float64(linear.Imin(x) + 1), nil },
		func(X *linear.Matrix, y *linear.Vector, ax linear.Order, _ int) error {
			return linear.IminInto(X, y, ax)
		}, false, true))
}

// reduction builds the shared number-or-into dispatch for a reduction pair.
// When ddof is set an optional degrees-of-freedom argument follows the order;
// when index is set the into form is rebased to 1-based positions.
func (e *Env) reduction(
	vec func(*linear.Vector, int) (float64, error),
	into func(*linear.Matrix, *linear.Vector, linear.Order, int) error,
	ddof, index bool,
) func(otto.FunctionCall) otto.Value {
	return func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			d := 0
			if ddof {
				d = e.intOpt(call, 1, 0)
			}
			r, err := vec(x, d)
			if err != nil {
				return e.fail(err)
			}
			return e.value(r)
		case *linear.Matrix:
			y := e.vectorArg(call, 1)
			ax := e.orderOpt(call, 2)
			d := 0
			if ddof {
				d = e.intOpt(call, 3, 0)
			}
			if err := into(x, y, ax, d); err != nil {
				return e.fail(err)
			}
			if index {
				if err := linear.Shift(y, 1); err != nil {
					return e.fail(err)
				}
			}
			return otto.UndefinedValue()
		}
		return otto.UndefinedValue()
	}
}
