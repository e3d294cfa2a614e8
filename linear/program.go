package linear

import (
	"fmt"
	"math"

	"github.com/anaef/go-linear/internal/kernel"
)

// Dot returns the dot product of x and y.
func Dot(x, y *Vector) (float64, error) {
	if y.n != x.n {
		return 0, fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, x.n, y.n)
	}
	return kernel.Dot(x.n, x.data(), x.inc, y.data(), y.inc), nil
}

// Ger performs the rank-1 update A += alpha * x * yᵀ.
func Ger(x, y *Vector, A *Matrix, alpha float64) error {
	if x.n != A.rows {
		return fmt.Errorf("%w: vector length %d, matrix rows %d", ErrDimensionMismatch, x.n, A.rows)
	}
	if y.n != A.cols {
		return fmt.Errorf("%w: vector length %d, matrix cols %d", ErrDimensionMismatch, y.n, A.cols)
	}
	kernel.Ger(A.order == RowMajor, A.rows, A.cols, alpha, x.data(), x.inc, y.data(), y.inc, A.data(), A.ld)
	return nil
}

// Gemv computes y = alpha * op(A) * x + beta * y, where op transposes A when
// trans is set.
func Gemv(A *Matrix, x, y *Vector, trans bool, alpha, beta float64) error {
	m, n := A.rows, A.cols
	if trans {
		m, n = A.cols, A.rows
	}
	if x.n != n {
		return fmt.Errorf("%w: vector length %d, operand cols %d", ErrDimensionMismatch, x.n, n)
	}
	if y.n != m {
		return fmt.Errorf("%w: vector length %d, operand rows %d", ErrDimensionMismatch, y.n, m)
	}
	kernel.Gemv(A.order == RowMajor, trans, A.rows, A.cols, alpha, A.data(), A.ld, x.data(), x.inc, beta, y.data(), y.inc)
	return nil
}

// Gemm computes C = alpha * op(A) * op(B) + beta * C. All three matrices
// must share one storage order, and C must be shaped for the product.
func Gemm(A, B, C *Matrix, transA, transB bool, alpha, beta float64) error {
	if B.order != A.order || C.order != A.order {
		return fmt.Errorf("%w: operands must share one order", ErrOrderMismatch)
	}
	m, ka := A.rows, A.cols
	if transA {
		m, ka = A.cols, A.rows
	}
	kb, n := B.rows, B.cols
	if transB {
		kb, n = B.cols, B.rows
	}
	if ka != kb {
		return fmt.Errorf("%w: inner dimensions %d and %d", ErrDimensionMismatch, ka, kb)
	}
	if C.rows != m || C.cols != n {
		return fmt.Errorf("%w: result is %dx%d, C is %dx%d", ErrDimensionMismatch, m, n, C.rows, C.cols)
	}
	kernel.Gemm(A.order == RowMajor, transA, transB, m, n, ka, alpha, A.data(), A.ld, B.data(), B.ld, beta, C.data(), C.ld)
	return nil
}

// Gesv solves A * X = B in place: A is overwritten with its LU factors and B
// with the solution. A failed solve leaves both operands undefined.
func Gesv(A, B *Matrix) error {
	if A.rows != A.cols {
		return fmt.Errorf("%w: matrix is %dx%d, not square", ErrDimensionMismatch, A.rows, A.cols)
	}
	if B.order != A.order {
		return fmt.Errorf("%w: operands must share one order", ErrOrderMismatch)
	}
	if B.rows != A.rows {
		return fmt.Errorf("%w: system order %d, right-hand side rows %d", ErrDimensionMismatch, A.rows, B.rows)
	}
	if !kernel.Gesv(A.order == RowMajor, A.rows, B.cols, A.data(), A.ld, B.data(), B.ld) {
		return fmt.Errorf("%w: solve failed", ErrSingular)
	}
	return nil
}

// Gels solves the least-squares problem min ‖op(A) * X - B‖ in place. B must
// have max(rows, cols) rows; its leading rows hold the solution on return.
func Gels(A, B *Matrix, trans bool) error {
	if B.order != A.order {
		return fmt.Errorf("%w: operands must share one order", ErrOrderMismatch)
	}
	br := A.rows
	if A.cols > br {
		br = A.cols
	}
	if B.rows != br {
		return fmt.Errorf("%w: right-hand side needs %d rows, got %d", ErrDimensionMismatch, br, B.rows)
	}
	if !kernel.Gels(A.order == RowMajor, trans, A.rows, A.cols, B.cols, A.data(), A.ld, B.data(), B.ld) {
		return fmt.Errorf("%w: rank deficient", ErrSingular)
	}
	return nil
}

// Inv inverts A in place. A failed inversion leaves A undefined.
func Inv(A *Matrix) error {
	if A.rows != A.cols {
		return fmt.Errorf("%w: matrix is %dx%d, not square", ErrDimensionMismatch, A.rows, A.cols)
	}
	if !kernel.Inv(A.order == RowMajor, A.rows, A.data(), A.ld) {
		return fmt.Errorf("%w: inversion failed", ErrSingular)
	}
	return nil
}

// Det returns the determinant of A. A is not modified; a matrix that is
// singular at machine precision yields zero.
func Det(A *Matrix) (float64, error) {
	if A.rows != A.cols {
		return 0, fmt.Errorf("%w: matrix is %dx%d, not square", ErrDimensionMismatch, A.rows, A.cols)
	}
	return kernel.Det(A.order == RowMajor, A.rows, A.data(), A.ld), nil
}

// Cov writes the covariance matrix of the columns of A into the square
// matrix B, with ddof delta degrees of freedom.
func Cov(A, B *Matrix, ddof int) error {
	if B.rows != B.cols {
		return fmt.Errorf("%w: result is %dx%d, not square", ErrDimensionMismatch, B.rows, B.cols)
	}
	if B.rows != A.cols {
		return fmt.Errorf("%w: %d columns, result order %d", ErrDimensionMismatch, A.cols, B.rows)
	}
	if err := checkDdof(ddof, A.rows); err != nil {
		return err
	}
	means := colMeans(A)
	s := A.axis(ColMajor)
	for i := 0; i < A.cols; i++ {
		vi := A.buf.data[A.off+i*s.step:]
		for j := i; j < A.cols; j++ {
			vj := A.buf.data[A.off+j*s.step:]
			sum := 0.0
			for k := 0; k < A.rows; k++ {
				sum += (vi[k*s.inc] - means[i]) * (vj[k*s.inc] - means[j])
			}
			c := sum / float64(A.rows-ddof)
			B.Set(i, j, c)
			B.Set(j, i, c)
		}
	}
	return nil
}

// Corr writes the Pearson correlation matrix of the columns of A into the
// square matrix B.
func Corr(A, B *Matrix) error {
	if B.rows != B.cols {
		return fmt.Errorf("%w: result is %dx%d, not square", ErrDimensionMismatch, B.rows, B.cols)
	}
	if B.rows != A.cols {
		return fmt.Errorf("%w: %d columns, result order %d", ErrDimensionMismatch, A.cols, B.rows)
	}
	means := colMeans(A)
	s := A.axis(ColMajor)
	norms := make([]float64, A.cols)
	for i := 0; i < A.cols; i++ {
		v := A.buf.data[A.off+i*s.step:]
		sum := 0.0
		for k := 0; k < A.rows; k++ {
			d := v[k*s.inc] - means[i]
			sum += d * d
		}
		norms[i] = math.Sqrt(sum)
	}
	for i := 0; i < A.cols; i++ {
		vi := A.buf.data[A.off+i*s.step:]
		for j := i; j < A.cols; j++ {
			vj := A.buf.data[A.off+j*s.step:]
			sum := 0.0
			for k := 0; k < A.rows; k++ {
				sum += (vi[k*s.inc] - means[i]) * (vj[k*s.inc] - means[j])
			}
			c := sum / (norms[i] * norms[j])
			B.Set(i, j, c)
			B.Set(j, i, c)
		}
	}
	return nil
}

func colMeans(A *Matrix) []float64 {
	s := A.axis(ColMajor)
	means := make([]float64, A.cols)
	for i := 0; i < A.cols; i++ {
		means[i] = meanHandler(s.length, A.buf.data[A.off+i*s.step:], s.inc, 0)
	}
	return means
}
