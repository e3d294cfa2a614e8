package linear

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a rows×cols view over a shared buffer. Consecutive elements of a
// major vector (a row when row-major, a column when column-major) are
// contiguous; consecutive major vectors start ld cells apart. A matrix
// created by NewMatrix owns a fresh buffer; matrices returned by view
// operations alias an existing one, possibly with ld larger than the minor
// dimension to skip through a bigger parent.
type Matrix struct {
	rows, cols int
	ld         int
	order      Order
	off        int
	buf        *buffer
}

// NewMatrix allocates a zero-filled rows×cols matrix in the given order.
func NewMatrix(rows, cols int, order Order) (*Matrix, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows %d", ErrInvalidDimension, rows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("%w: cols %d", ErrInvalidDimension, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d x %d overflows", ErrInvalidDimension, rows, cols)
	}
	buf, err := newBuffer(rows * cols)
	if err != nil {
		return nil, err
	}
	ld := cols
	if order == ColMajor {
		ld = rows
	}
	return &Matrix{rows: rows, cols: cols, ld: ld, order: order, buf: buf}, nil
}

func newMatrixView(rows, cols, ld int, order Order, off int, buf *buffer) *Matrix {
	buf.retain()
	return &Matrix{rows: rows, cols: cols, ld: ld, order: order, off: off, buf: buf}
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Order returns the matrix's storage order.
func (m *Matrix) Order() Order { return m.order }

// LD returns the leading dimension: the distance, in cells, between the
// starts of consecutive major vectors.
func (m *Matrix) LD() int { return m.ld }

func (m *Matrix) data() []float64 { return m.buf.data[m.off:] }

// majorDim is the number of major vectors, minorDim their length.
func (m *Matrix) majorDim() int {
	if m.order == RowMajor {
		return m.rows
	}
	return m.cols
}

func (m *Matrix) minorDim() int {
	if m.order == RowMajor {
		return m.cols
	}
	return m.rows
}

// contiguous reports whether the matrix occupies one gapless run, allowing
// whole-buffer traversal instead of a pass per major vector.
func (m *Matrix) contiguous() bool { return m.ld == m.minorDim() }

// axisSpec describes how to walk the logical rows or columns of a matrix:
// count vectors of the given length, step cells between vector starts, and
// inc cells between the elements of one vector.
type axisSpec struct {
	count  int
	length int
	step   int
	inc    int
}

// axis resolves a logical axis against the physical order. Walking the axis
// the matrix is stored in yields contiguous vectors (inc 1); walking the
// crossing axis yields vectors strided by the leading dimension.
func (m *Matrix) axis(ax Order) axisSpec {
	if ax == RowMajor {
		if m.order == RowMajor {
			return axisSpec{count: m.rows, length: m.cols, step: m.ld, inc: 1}
		}
		return axisSpec{count: m.rows, length: m.cols, step: 1, inc: m.ld}
	}
	if m.order == ColMajor {
		return axisSpec{count: m.cols, length: m.rows, step: m.ld, inc: 1}
	}
	return axisSpec{count: m.cols, length: m.rows, step: 1, inc: m.ld}
}

// At returns the element at row i, column j. It panics if out of range.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	if m.order == RowMajor {
		return m.buf.data[m.off+i*m.ld+j]
	}
	return m.buf.data[m.off+j*m.ld+i]
}

// Set assigns the element at row i, column j. It panics if out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.check(i, j)
	if m.order == RowMajor {
		m.buf.data[m.off+i*m.ld+j] = v
	} else {
		m.buf.data[m.off+j*m.ld+i] = v
	}
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linear: matrix index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

// Vec returns major vector i as a contiguous vector view: row i when
// row-major, column i when column-major.
func (m *Matrix) Vec(i int) (*Vector, error) {
	if i < 0 || i >= m.majorDim() {
		return nil, fmt.Errorf("%w: major vector %d of %d", ErrIndexOutOfRange, i, m.majorDim())
	}
	return newVectorView(m.minorDim(), 1, m.off+i*m.ld, m.buf), nil
}

// TVec returns the projection across the major vectors at minor index i,
// column i when row-major and row i when column-major, as a vector view
// strided by the leading dimension.
func (m *Matrix) TVec(i int) (*Vector, error) {
	if i < 0 || i >= m.minorDim() {
		return nil, fmt.Errorf("%w: minor index %d of %d", ErrIndexOutOfRange, i, m.minorDim())
	}
	return newVectorView(m.majorDim(), m.ld, m.off+i, m.buf), nil
}

// Row returns logical row i as a vector view, regardless of storage order.
func (m *Matrix) Row(i int) (*Vector, error) {
	if m.order == RowMajor {
		return m.Vec(i)
	}
	return m.TVec(i)
}

// Col returns logical column j as a vector view, regardless of storage order.
func (m *Matrix) Col(j int) (*Vector, error) {
	if m.order == ColMajor {
		return m.Vec(j)
	}
	return m.TVec(j)
}

// Slice returns the sub-matrix of rows [i,j) and columns [k,l) as a view
// sharing this matrix's buffer, order, and leading dimension.
func (m *Matrix) Slice(i, j, k, l int) (*Matrix, error) {
	if i < 0 || j > m.rows || i >= j {
		return nil, fmt.Errorf("%w: row slice [%d,%d) of %d rows", ErrIndexOutOfRange, i, j, m.rows)
	}
	if k < 0 || l > m.cols || k >= l {
		return nil, fmt.Errorf("%w: col slice [%d,%d) of %d cols", ErrIndexOutOfRange, k, l, m.cols)
	}
	off := m.off
	if m.order == RowMajor {
		off += i*m.ld + k
	} else {
		off += k*m.ld + i
	}
	return newMatrixView(j-i, l-k, m.ld, m.order, off, m.buf), nil
}

// Refs reports the number of live references on the shared buffer, this
// view included. A released view reports zero.
func (m *Matrix) Refs() int {
	if m.buf == nil {
		return 0
	}
	return int(m.buf.refs.Load())
}

// Release drops this view's reference on the shared buffer. Calling it is
// optional; the garbage collector reclaims unreferenced buffers regardless.
func (m *Matrix) Release() {
	if m.buf != nil {
		m.buf.release()
		m.buf = nil
	}
}

// String formats the matrix one logical row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
