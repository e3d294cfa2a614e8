// Package linear provides vectors and matrices as zero-copy views over
// shared numeric buffers.
//
// A Vector is a strided window of float64 cells; a Matrix adds a leading
// dimension and a major order (row- or column-major). Views derived from an
// object, such as sub-vectors, sub-matrices, rows, columns, and transposed
// projections, alias the parent's buffer and keep it alive for as long as
// they exist.
//
// Elementwise operations, reductions, and elementary function application
// run through a single dispatch layer that accepts any combination of
// vector and matrix operands and resolves storage order to the right
// (offset, stride) iteration. Algebraic operations (products, solves,
// factorizations) are delegated to BLAS and LAPACK kernels.
package linear
