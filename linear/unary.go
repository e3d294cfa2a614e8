package linear

import (
	"fmt"
	"math"

	"github.com/anaef/go-linear/internal/kernel"
)

// reduceFunc folds n strided cells into a scalar. ddof is meaningful only
// for the variance-family handlers.
type reduceFunc func(n int, x []float64, inc int, ddof int) float64

// reduceInto applies f to every vector of X along the logical axis ax and
// writes the results into y: one scalar per logical row for RowMajor, per
// logical column for ColMajor, independent of how X is stored.
func reduceInto(f reduceFunc, X *Matrix, y *Vector, ax Order, ddof int) error {
	s := X.axis(ax)
	if y.n != s.count {
		return fmt.Errorf("%w: result vector length %d, axis count %d", ErrDimensionMismatch, y.n, s.count)
	}
	for i := 0; i < s.count; i++ {
		y.buf.data[y.off+i*y.inc] = f(s.length, X.buf.data[X.off+i*s.step:], s.inc, ddof)
	}
	return nil
}

// Sum returns the sum of the elements of x.
//
// Accumulation is a plain sequential left-to-right fold; the exact rounding
// of that order is part of the contract.
func Sum(x *Vector) float64 {
	return sumHandler(x.n, x.data(), x.inc, 0)
}

// SumInto writes per-row (ax RowMajor) or per-column (ax ColMajor) sums of X
// into y.
func SumInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(sumHandler, X, y, ax, 0)
}

func sumHandler(n int, x []float64, inc int, _ int) float64 {
	sum := 0.0
	if inc == 1 {
		for i := 0; i < n; i++ {
			sum += x[i]
		}
		return sum
	}
	for i := 0; i < n; i++ {
		sum += x[i*inc]
	}
	return sum
}

// Mean returns the arithmetic mean of the elements of x.
func Mean(x *Vector) float64 {
	return meanHandler(x.n, x.data(), x.inc, 0)
}

// MeanInto writes per-row or per-column means of X into y.
func MeanInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(meanHandler, X, y, ax, 0)
}

func meanHandler(n int, x []float64, inc int, _ int) float64 {
	return sumHandler(n, x, inc, 0) / float64(n)
}

func checkDdof(ddof, n int) error {
	if ddof < 0 || ddof >= n {
		return fmt.Errorf("%w: ddof %d for length %d", ErrInvalidArgument, ddof, n)
	}
	return nil
}

// Var returns the variance of the elements of x with ddof delta degrees of
// freedom: the two-pass sum of squared deviations from the mean, divided by
// n - ddof.
func Var(x *Vector, ddof int) (float64, error) {
	if err := checkDdof(ddof, x.n); err != nil {
		return 0, err
	}
	return varHandler(x.n, x.data(), x.inc, ddof), nil
}

// VarInto writes per-row or per-column variances of X into y.
func VarInto(X *Matrix, y *Vector, ax Order, ddof int) error {
	if err := checkDdof(ddof, X.axis(ax).length); err != nil {
		return err
	}
	return reduceInto(varHandler, X, y, ax, ddof)
}

func varHandler(n int, x []float64, inc int, ddof int) float64 {
	mean := sumHandler(n, x, inc, 0) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		d := x[i*inc] - mean
		sum += d * d
	}
	return sum / float64(n-ddof)
}

// Std returns the standard deviation of the elements of x with ddof delta
// degrees of freedom.
func Std(x *Vector, ddof int) (float64, error) {
	v, err := Var(x, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StdInto writes per-row or per-column standard deviations of X into y.
func StdInto(X *Matrix, y *Vector, ax Order, ddof int) error {
	if err := checkDdof(ddof, X.axis(ax).length); err != nil {
		return err
	}
	return reduceInto(stdHandler, X, y, ax, ddof)
}

func stdHandler(n int, x []float64, inc int, ddof int) float64 {
	return math.Sqrt(varHandler(n, x, inc, ddof))
}

// Nrm2 returns the Euclidean norm of x.
func Nrm2(x *Vector) float64 {
	return kernel.Nrm2(x.n, x.data(), x.inc)
}

// Nrm2Into writes per-row or per-column Euclidean norms of X into y.
func Nrm2Into(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(nrm2Handler, X, y, ax, 0)
}

func nrm2Handler(n int, x []float64, inc int, _ int) float64 {
	return kernel.Nrm2(n, x, inc)
}

// Asum returns the sum of absolute values of x.
func Asum(x *Vector) float64 {
	return kernel.Asum(x.n, x.data(), x.inc)
}

// AsumInto writes per-row or per-column absolute-value sums of X into y.
func AsumInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(asumHandler, X, y, ax, 0)
}

func asumHandler(n int, x []float64, inc int, _ int) float64 {
	return kernel.Asum(n, x, inc)
}

// Iamax returns the index of the first element of x with the largest
// absolute value.
func Iamax(x *Vector) int {
	return kernel.Iamax(x.n, x.data(), x.inc)
}

// IamaxInto writes the per-row or per-column Iamax indices of X into y.
func IamaxInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(iamaxHandler, X, y, ax, 0)
}

func iamaxHandler(n int, x []float64, inc int, _ int) float64 {
	return float64(kernel.Iamax(n, x, inc))
}

// Iamin returns the index of the first element of x with the smallest
// absolute value.
func Iamin(x *Vector) int {
	return int(iaminHandler(x.n, x.data(), x.inc, 0))
}

// IaminInto writes the per-row or per-column Iamin indices of X into y.
func IaminInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(iaminHandler, X, y, ax, 0)
}

func iaminHandler(n int, x []float64, inc int, _ int) float64 {
	best, idx := math.Abs(x[0]), 0
	for i := 1; i < n; i++ {
		if v := math.Abs(x[i*inc]); v < best {
			best, idx = v, i
		}
	}
	return float64(idx)
}

// Imax returns the index of the first maximal element of x.
func Imax(x *Vector) int {
	return int(imaxHandler(x.n, x.data(), x.inc, 0))
}

// ImaxInto writes the per-row or per-column Imax indices of X into y.
func ImaxInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(imaxHandler, X, y, ax, 0)
}

func imaxHandler(n int, x []float64, inc int, _ int) float64 {
	best, idx := x[0], 0
	for i := 1; i < n; i++ {
		if v := x[i*inc]; v > best {
			best, idx = v, i
		}
	}
	return float64(idx)
}

// Imin returns the index of the first minimal element of x.
func Imin(x *Vector) int {
	return int(iminHandler(x.n, x.data(), x.inc, 0))
}

// IminInto writes the per-row or per-column Imin indices of X into y.
func IminInto(X *Matrix, y *Vector, ax Order) error {
	return reduceInto(iminHandler, X, y, ax, 0)
}

func iminHandler(n int, x []float64, inc int, _ int) float64 {
	best, idx := x[0], 0
	for i := 1; i < n; i++ {
		if v := x[i*inc]; v < best {
			best, idx = v, i
		}
	}
	return float64(idx)
}
