package linear

import (
	"fmt"
	"math"

	"github.com/anaef/go-linear/internal/kernel"
	"github.com/anaef/go-linear/internal/parallel"
)

// binaryFunc applies one pairwise elementwise rule to n strided cells of x
// and y, mutating y (and, for swap-like rules, x).
type binaryFunc func(n int, x []float64, incx int, y []float64, incy int, alpha, beta float64)

// binary resolves the shape combination of x and y and applies f:
//
//   - vector × vector: one call over the common length;
//   - vector × matrix: x is broadcast along the logical axis ax, one call
//     per logical row (ax RowMajor) or column (ax ColMajor) of the matrix,
//     independent of the matrix's storage order;
//   - matrix × matrix: operands must match in order and shape, one call per
//     major vector pair, or a single call when both are contiguous.
//
// The first operand is tested as a vector before a matrix; a matrix first
// operand requires a matrix second operand.
func binary(f binaryFunc, x, y Operand, ax Order, alpha, beta float64) error {
	switch x := x.(type) {
	case *Vector:
		switch y := y.(type) {
		case *Vector:
			if y.n != x.n {
				return fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, x.n, y.n)
			}
			f(x.n, x.data(), x.inc, y.data(), y.inc, alpha, beta)
		case *Matrix:
			s := y.axis(ax)
			if x.n != s.length {
				return fmt.Errorf("%w: vector length %d, matrix %s length %d", ErrDimensionMismatch, x.n, ax, s.length)
			}
			for i := 0; i < s.count; i++ {
				f(x.n, x.data(), x.inc, y.buf.data[y.off+i*s.step:], s.inc, alpha, beta)
			}
		default:
			return fmt.Errorf("%w: vector or matrix expected as second operand", ErrTypeMismatch)
		}
	case *Matrix:
		Y, ok := y.(*Matrix)
		if !ok {
			return fmt.Errorf("%w: matrix expected as second operand", ErrTypeMismatch)
		}
		if Y.order != x.order {
			return fmt.Errorf("%w: %s and %s", ErrOrderMismatch, x.order, Y.order)
		}
		if Y.rows != x.rows || Y.cols != x.cols {
			return fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, x.rows, x.cols, Y.rows, Y.cols)
		}
		if x.contiguous() && Y.contiguous() {
			f(x.rows*x.cols, x.data(), 1, Y.data(), 1, alpha, beta)
			return nil
		}
		s := x.axis(x.order)
		t := Y.axis(Y.order)
		parallel.For(s.count, func(i int) {
			f(s.length, x.buf.data[x.off+i*s.step:], 1, Y.buf.data[Y.off+i*t.step:], 1, alpha, beta)
		}, par)
	default:
		return fmt.Errorf("%w: vector or matrix expected", ErrTypeMismatch)
	}
	return nil
}

// Axpy computes y += alpha * x. For a matrix y, x is broadcast along ax.
func Axpy(x, y Operand, ax Order, alpha float64) error {
	return binary(axpyHandler, x, y, ax, alpha, 0)
}

func axpyHandler(n int, x []float64, incx int, y []float64, incy int, alpha, _ float64) {
	kernel.Axpy(n, alpha, x, incx, y, incy)
}

// Axpby computes y = alpha * x + beta * y. For a matrix y, x is broadcast
// along ax.
func Axpby(x, y Operand, ax Order, alpha, beta float64) error {
	return binary(axpbyHandler, x, y, ax, alpha, beta)
}

func axpbyHandler(n int, x []float64, incx int, y []float64, incy int, alpha, beta float64) {
	if beta != 1 {
		kernel.Scal(n, beta, y, incy)
	}
	kernel.Axpy(n, alpha, x, incx, y, incy)
}

// MulElem computes y *= x^alpha elementwise, with fast paths for alpha 1
// (multiply), -1 (divide), and 0.5 (multiply by square root). For a matrix
// y, x is broadcast along ax.
func MulElem(x, y Operand, ax Order, alpha float64) error {
	return binary(mulHandler, x, y, ax, alpha, 0)
}

func mulHandler(n int, x []float64, incx int, y []float64, incy int, alpha, _ float64) {
	switch alpha {
	case 1:
		if incx == 1 && incy == 1 {
			for i := 0; i < n; i++ {
				y[i] *= x[i]
			}
			return
		}
		for i := 0; i < n; i++ {
			y[i*incy] *= x[i*incx]
		}
	case -1:
		for i := 0; i < n; i++ {
			y[i*incy] /= x[i*incx]
		}
	case 0.5:
		for i := 0; i < n; i++ {
			y[i*incy] *= math.Sqrt(x[i*incx])
		}
	case 0:
	default:
		for i := 0; i < n; i++ {
			y[i*incy] *= math.Pow(x[i*incx], alpha)
		}
	}
}

// Swap exchanges the elements of x and y. For a matrix y, x is swapped
// successively against each vector along ax.
func Swap(x, y Operand, ax Order) error {
	return binary(func(n int, x []float64, incx int, y []float64, incy int, _, _ float64) {
		kernel.Swap(n, x, incx, y, incy)
	}, x, y, ax, 0, 0)
}

// Copy copies x into y. For a matrix y, x is copied into every vector along
// ax.
func Copy(x, y Operand, ax Order) error {
	return binary(func(n int, x []float64, incx int, y []float64, incy int, _, _ float64) {
		kernel.Copy(n, x, incx, y, incy)
	}, x, y, ax, 0, 0)
}
