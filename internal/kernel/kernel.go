// Package kernel adapts raw buffer/stride/leading-dimension descriptors onto
// the BLAS and LAPACK implementations provided by gonum. Callers validate
// shapes; this package only translates layout.
//
// gonum's blas64 and lapack64 are row-major. Column-major operands are
// handled without copying for BLAS calls by operating on the transposed
// row-major view of the same memory, and with a transpose-staging copy for
// LAPACK calls, which is what LAPACKE itself does for its non-native order.
package kernel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

func vec(n int, data []float64, inc int) blas64.Vector {
	return blas64.Vector{N: n, Data: data, Inc: inc}
}

func trans(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

// Dot returns the dot product of two strided sequences of length n.
func Dot(n int, x []float64, incx int, y []float64, incy int) float64 {
	return blas64.Dot(vec(n, x, incx), vec(n, y, incy))
}

// Nrm2 returns the Euclidean norm of a strided sequence.
func Nrm2(n int, x []float64, inc int) float64 {
	return blas64.Nrm2(vec(n, x, inc))
}

// Asum returns the sum of absolute values of a strided sequence.
func Asum(n int, x []float64, inc int) float64 {
	return blas64.Asum(vec(n, x, inc))
}

// Iamax returns the index of the first element with the largest absolute
// value.
func Iamax(n int, x []float64, inc int) int {
	return blas64.Iamax(vec(n, x, inc))
}

// Scal scales a strided sequence by alpha.
func Scal(n int, alpha float64, x []float64, inc int) {
	blas64.Scal(alpha, vec(n, x, inc))
}

// Axpy computes y += alpha * x.
func Axpy(n int, alpha float64, x []float64, incx int, y []float64, incy int) {
	blas64.Axpy(alpha, vec(n, x, incx), vec(n, y, incy))
}

// Copy copies x into y.
func Copy(n int, x []float64, incx int, y []float64, incy int) {
	blas64.Copy(vec(n, x, incx), vec(n, y, incy))
}

// Swap exchanges x and y.
func Swap(n int, x []float64, incx int, y []float64, incy int) {
	blas64.Swap(vec(n, x, incx), vec(n, y, incy))
}

// Ger performs the rank-1 update A += alpha * x * yᵀ on an m×n matrix. For a
// column-major A the update runs as Aᵀ += alpha * y * xᵀ on the row-major
// view of the same memory.
func Ger(rowMajor bool, m, n int, alpha float64, x []float64, incx int, y []float64, incy int, a []float64, lda int) {
	xv, yv := vec(m, x, incx), vec(n, y, incy)
	if rowMajor {
		blas64.Ger(alpha, xv, yv, blas64.General{Rows: m, Cols: n, Stride: lda, Data: a})
		return
	}
	blas64.Ger(alpha, yv, xv, blas64.General{Rows: n, Cols: m, Stride: lda, Data: a})
}

// Gemv computes y = alpha * op(A) * x + beta * y for a stored m×n matrix.
// Column-major storage flips the transpose flag against the row-major view.
func Gemv(rowMajor, t bool, m, n int, alpha float64, a []float64, lda int, x []float64, incx int, beta float64, y []float64, incy int) {
	xn, yn := n, m
	if t {
		xn, yn = m, n
	}
	xv, yv := vec(xn, x, incx), vec(yn, y, incy)
	if rowMajor {
		blas64.Gemv(trans(t), alpha, blas64.General{Rows: m, Cols: n, Stride: lda, Data: a}, xv, beta, yv)
		return
	}
	blas64.Gemv(trans(!t), alpha, blas64.General{Rows: n, Cols: m, Stride: lda, Data: a}, xv, beta, yv)
}

// Gemm computes C = alpha * op(A) * op(B) + beta * C where op(A) is m×k,
// op(B) is k×n, and C is m×n. For column-major operands the transposed
// product Cᵀ = alpha * op(B)ᵀ * op(A)ᵀ + beta * Cᵀ runs on the row-major
// views, with the operands swapped and the flags carried over.
func Gemm(rowMajor, transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	aRows, aCols := m, k
	if transA {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if transB {
		bRows, bCols = n, k
	}
	if rowMajor {
		blas64.Gemm(trans(transA), trans(transB), alpha,
			blas64.General{Rows: aRows, Cols: aCols, Stride: lda, Data: a},
			blas64.General{Rows: bRows, Cols: bCols, Stride: ldb, Data: b},
			beta,
			blas64.General{Rows: m, Cols: n, Stride: ldc, Data: c})
		return
	}
	blas64.Gemm(trans(transB), trans(transA), alpha,
		blas64.General{Rows: bCols, Cols: bRows, Stride: ldb, Data: b},
		blas64.General{Rows: aCols, Cols: aRows, Stride: lda, Data: a},
		beta,
		blas64.General{Rows: n, Cols: m, Stride: ldc, Data: c})
}

// pack copies an r×c region with leading dimension ld into a fresh row-major
// block with stride c.
func pack(rowMajor bool, r, c int, data []float64, ld int) []float64 {
	out := make([]float64, r*c)
	if rowMajor {
		for i := 0; i < r; i++ {
			copy(out[i*c:(i+1)*c], data[i*ld:i*ld+c])
		}
		return out
	}
	for j := 0; j < c; j++ {
		col := data[j*ld:]
		for i := 0; i < r; i++ {
			out[i*c+j] = col[i]
		}
	}
	return out
}

// unpack writes a packed row-major r×c block back into a region with leading
// dimension ld.
func unpack(rowMajor bool, r, c int, src []float64, data []float64, ld int) {
	if rowMajor {
		for i := 0; i < r; i++ {
			copy(data[i*ld:i*ld+c], src[i*c:(i+1)*c])
		}
		return
	}
	for j := 0; j < c; j++ {
		col := data[j*ld:]
		for i := 0; i < r; i++ {
			col[i] = src[i*c+j]
		}
	}
}

// Gesv solves A * X = B for a square n×n system with nrhs right-hand sides,
// overwriting A with its LU factors and B with the solution. It reports
// false if A is singular at machine precision.
func Gesv(rowMajor bool, n, nrhs int, a []float64, lda int, b []float64, ldb int) bool {
	ipiv := make([]int, n)
	if rowMajor {
		am := blas64.General{Rows: n, Cols: n, Stride: lda, Data: a}
		if !lapack64.Getrf(am, ipiv) {
			return false
		}
		lapack64.Getrs(blas.NoTrans, am, blas64.General{Rows: n, Cols: nrhs, Stride: ldb, Data: b}, ipiv)
		return true
	}
	ap := pack(false, n, n, a, lda)
	bp := pack(false, n, nrhs, b, ldb)
	am := blas64.General{Rows: n, Cols: n, Stride: n, Data: ap}
	ok := lapack64.Getrf(am, ipiv)
	if ok {
		lapack64.Getrs(blas.NoTrans, am, blas64.General{Rows: n, Cols: nrhs, Stride: nrhs, Data: bp}, ipiv)
	}
	unpack(false, n, n, ap, a, lda)
	unpack(false, n, nrhs, bp, b, ldb)
	return ok
}

// Gels solves the least-squares problem min ‖op(A) * X - B‖ for a stored m×n
// matrix A with nrhs right-hand sides. B must have max(m, n) rows; on return
// its leading rows hold the solution. It reports false if A is rank
// deficient.
func Gels(rowMajor, t bool, m, n, nrhs int, a []float64, lda int, b []float64, ldb int) bool {
	br := m
	if n > m {
		br = n
	}
	if rowMajor {
		am := blas64.General{Rows: m, Cols: n, Stride: lda, Data: a}
		bm := blas64.General{Rows: br, Cols: nrhs, Stride: ldb, Data: b}
		work := make([]float64, 1)
		lapack64.Gels(trans(t), am, bm, work, -1)
		work = make([]float64, int(work[0]))
		return lapack64.Gels(trans(t), am, bm, work, len(work))
	}
	ap := pack(false, m, n, a, lda)
	bp := pack(false, br, nrhs, b, ldb)
	am := blas64.General{Rows: m, Cols: n, Stride: n, Data: ap}
	bm := blas64.General{Rows: br, Cols: nrhs, Stride: nrhs, Data: bp}
	work := make([]float64, 1)
	lapack64.Gels(trans(t), am, bm, work, -1)
	work = make([]float64, int(work[0]))
	ok := lapack64.Gels(trans(t), am, bm, work, len(work))
	unpack(false, m, n, ap, a, lda)
	unpack(false, br, nrhs, bp, b, ldb)
	return ok
}

// Inv inverts a square n×n matrix in place via LU factorization. It reports
// false if the matrix is singular at machine precision.
func Inv(rowMajor bool, n int, a []float64, lda int) bool {
	ipiv := make([]int, n)
	if rowMajor {
		am := blas64.General{Rows: n, Cols: n, Stride: lda, Data: a}
		if !lapack64.Getrf(am, ipiv) {
			return false
		}
		work := make([]float64, 1)
		lapack64.Getri(am, ipiv, work, -1)
		work = make([]float64, int(work[0]))
		return lapack64.Getri(am, ipiv, work, len(work))
	}
	ap := pack(false, n, n, a, lda)
	am := blas64.General{Rows: n, Cols: n, Stride: n, Data: ap}
	ok := lapack64.Getrf(am, ipiv)
	if ok {
		work := make([]float64, 1)
		lapack64.Getri(am, ipiv, work, -1)
		work = make([]float64, int(work[0]))
		ok = lapack64.Getri(am, ipiv, work, len(work))
	}
	unpack(false, n, n, ap, a, lda)
	return ok
}

// Det returns the determinant of a square n×n matrix: the product of the
// pivoted LU diagonal, sign-flipped once per row permutation. A matrix that
// is singular at machine precision yields zero. The input is not modified.
func Det(rowMajor bool, n int, a []float64, lda int) float64 {
	ap := pack(rowMajor, n, n, a, lda)
	ipiv := make([]int, n)
	if !lapack64.Getrf(blas64.General{Rows: n, Cols: n, Stride: n, Data: ap}, ipiv) {
		return 0
	}
	det := 1.0
	for i := 0; i < n; i++ {
		det *= ap[i*n+i]
		if ipiv[i] != i {
			det = -det
		}
	}
	return det
}
