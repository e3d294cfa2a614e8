package script

import (
	"strconv"

	"github.com/robertkrimen/otto"

	"github.com/anaef/go-linear/linear"
)

func (e *Env) registerStructural() {
	e.vm.Set("vector", func(call otto.FunctionCall) otto.Value {
		x, err := linear.NewVector(e.intArg(call, 0))
		if err != nil {
			return e.fail(err)
		}
		return e.value(x)
	})
	e.vm.Set("matrix", func(call otto.FunctionCall) otto.Value {
		m, err := linear.NewMatrix(e.intArg(call, 0), e.intArg(call, 1), e.orderOpt(call, 2))
		if err != nil {
			return e.fail(err)
		}
		return e.value(m)
	})
	e.vm.Set("type", func(call otto.FunctionCall) otto.Value {
		v, err := call.Argument(0).Export()
		if err == nil {
			switch v.(type) {
			case *linear.Vector:
				return e.value("vector")
			case *linear.Matrix:
				return e.value("matrix")
			}
		}
		return otto.NullValue()
	})
	e.vm.Set("size", func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			return e.value(x.Len())
		case *linear.Matrix:
			rows, cols := x.Dims()
			return e.value(map[string]any{"rows": rows, "cols": cols, "order": x.Order().String()})
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("get", func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			i := e.intArg(call, 1)
			if i < 1 || i > x.Len() {
				return otto.NullValue()
			}
			return e.value(x.At(i - 1))
		case *linear.Matrix:
			i, j := e.intArg(call, 1), e.intArg(call, 2)
			rows, cols := x.Dims()
			if i < 1 || i > rows || j < 1 || j > cols {
				return otto.NullValue()
			}
			return e.value(x.At(i-1, j-1))
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("set", func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			i := e.intArg(call, 1)
			if i < 1 || i > x.Len() {
				return e.throw("bad argument #2: index %d out of range", i)
			}
			x.Set(i-1, e.floatOpt(call, 2, 0))
		case *linear.Matrix:
			i, j := e.intArg(call, 1), e.intArg(call, 2)
			rows, cols := x.Dims()
			if i < 1 || i > rows || j < 1 || j > cols {
				return e.throw("bad argument: index (%d,%d) out of range", i, j)
			}
			x.Set(i-1, j-1, e.floatOpt(call, 3, 0))
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("sub", func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			start := e.intOpt(call, 1, 1)
			end := e.intOpt(call, 2, x.Len())
			s, err := x.Slice(start-1, end)
			if err != nil {
				return e.fail(err)
			}
			return e.value(s)
		case *linear.Matrix:
			rows, cols := x.Dims()
			rowStart := e.intOpt(call, 1, 1)
			colStart := e.intOpt(call, 2, 1)
			rowEnd := e.intOpt(call, 3, rows)
			colEnd := e.intOpt(call, 4, cols)
			s, err := x.Slice(rowStart-1, rowEnd, colStart-1, colEnd)
			if err != nil {
				return e.fail(err)
			}
			return e.value(s)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("tvector", func(call otto.FunctionCall) otto.Value {
		m := e.matrixArg(call, 0)
		v, err := m.TVec(e.intArg(call, 1) - 1)
		if err != nil {
			return e.fail(err)
		}
		return e.value(v)
	})
	e.vm.Set("totable", func(call otto.FunctionCall) otto.Value {
		switch x := e.operand(call, 0).(type) {
		case *linear.Vector:
			return e.value(x.ToSlice())
		case *linear.Matrix:
			return e.value(x.ToSlices())
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("tolinear", func(call otto.FunctionCall) otto.Value {
		arr := arrayObject(call.Argument(0))
		if arr == nil {
			return e.throw("bad argument #1: array expected")
		}
		n := arrayLen(arr)
		if n < 1 {
			return e.throw("bad argument #1: empty array")
		}
		first, _ := arr.Get("0")
		if arrayObject(first) != nil {
			return e.toMatrix(arr, n, e.orderOpt(call, 1))
		}
		return e.toVector(arr, n)
	})
	e.vm.Set("unwind", func(call otto.FunctionCall) otto.Value {
		last := len(call.ArgumentList) - 1
		if last < 1 {
			return e.throw("wrong number of arguments")
		}
		x := e.vectorArg(call, last)
		ms := make([]*linear.Matrix, last)
		for i := 0; i < last; i++ {
			ms[i] = e.matrixArg(call, i)
		}
		if err := linear.Unwind(x, ms...); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
	e.vm.Set("reshape", func(call otto.FunctionCall) otto.Value {
		if len(call.ArgumentList) < 2 {
			return e.throw("wrong number of arguments")
		}
		x := e.vectorArg(call, 0)
		ms := make([]*linear.Matrix, len(call.ArgumentList)-1)
		for i := range ms {
			ms[i] = e.matrixArg(call, i+1)
		}
		if err := linear.Reshape(x, ms...); err != nil {
			return e.fail(err)
		}
		return otto.UndefinedValue()
	})
}

// arrayObject returns the object behind v if it is a JavaScript array.
func arrayObject(v otto.Value) *otto.Object {
	o := v.Object()
	if o == nil || o.Class() != "Array" {
		return nil
	}
	return o
}

func arrayLen(o *otto.Object) int {
	v, err := o.Get("length")
	if err != nil {
		return 0
	}
	n, _ := v.ToInteger()
	return int(n)
}

func arrayAt(o *otto.Object, i int) otto.Value {
	v, err := o.Get(strconv.Itoa(i))
	if err != nil {
		return otto.UndefinedValue()
	}
	return v
}

// toVector builds a vector from a host array, rejecting non-numeric entries
// with their 1-based position.
func (e *Env) toVector(arr *otto.Object, n int) otto.Value {
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		v := arrayAt(arr, i)
		if !v.IsNumber() {
			return e.throw("bad value at index %d", i+1)
		}
		data[i], _ = v.ToFloat()
	}
	x, err := linear.VectorFromSlice(data)
	if err != nil {
		return e.fail(err)
	}
	return e.value(x)
}

// toMatrix builds a matrix from a host array of arrays ordered by the major
// dimension of the requested order.
func (e *Env) toMatrix(arr *otto.Object, n int, order linear.Order) otto.Value {
	data := make([][]float64, n)
	minor := -1
	for i := 0; i < n; i++ {
		row := arrayObject(arrayAt(arr, i))
		if row == nil {
			return e.throw("bad value at index %d", i+1)
		}
		k := arrayLen(row)
		if minor < 0 {
			if k < 1 {
				return e.throw("bad value at index %d", i+1)
			}
			minor = k
		} else if k != minor {
			return e.throw("bad value at index %d", i+1)
		}
		data[i] = make([]float64, minor)
		for j := 0; j < minor; j++ {
			v := arrayAt(row, j)
			if !v.IsNumber() {
				return e.throw("bad value at index (%d,%d)", i+1, j+1)
			}
			data[i][j], _ = v.ToFloat()
		}
	}
	m, err := linear.MatrixFromSlices(data, order)
	if err != nil {
		return e.fail(err)
	}
	return e.value(m)
}
