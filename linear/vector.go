package linear

import (
	"fmt"
	"strings"
)

// Vector is a strided view of length n over a shared buffer. Element i lives
// at offset off + i*inc of the buffer. A vector created by NewVector owns a
// fresh buffer; vectors returned by view operations alias an existing one.
type Vector struct {
	n   int
	inc int
	off int
	buf *buffer
}

// NewVector allocates a zero-filled vector of length n.
func NewVector(n int) (*Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidDimension, n)
	}
	buf, err := newBuffer(n)
	if err != nil {
		return nil, err
	}
	return &Vector{n: n, inc: 1, buf: buf}, nil
}

// newVectorView wraps an existing buffer region without copying, retaining
// the buffer for the lifetime of the view.
func newVectorView(n, inc, off int, buf *buffer) *Vector {
	buf.retain()
	return &Vector{n: n, inc: inc, off: off, buf: buf}
}

// Len returns the number of elements.
func (x *Vector) Len() int { return x.n }

// Inc returns the stride between consecutive elements.
func (x *Vector) Inc() int { return x.inc }

// data returns the backing cells starting at the view's offset.
func (x *Vector) data() []float64 { return x.buf.data[x.off:] }

// At returns element i. It panics if i is out of range.
func (x *Vector) At(i int) float64 {
	if i < 0 || i >= x.n {
		panic(fmt.Sprintf("linear: vector index %d out of range [0,%d)", i, x.n))
	}
	return x.buf.data[x.off+i*x.inc]
}

// Set assigns element i. It panics if i is out of range.
func (x *Vector) Set(i int, v float64) {
	if i < 0 || i >= x.n {
		panic(fmt.Sprintf("linear: vector index %d out of range [0,%d)", i, x.n))
	}
	x.buf.data[x.off+i*x.inc] = v
}

// Slice returns the sub-vector of elements [i, j) as a view sharing this
// vector's buffer and stride. Mutating the slice mutates the parent.
func (x *Vector) Slice(i, j int) (*Vector, error) {
	if i < 0 || j > x.n || i >= j {
		return nil, fmt.Errorf("%w: slice [%d,%d) of vector of length %d", ErrIndexOutOfRange, i, j, x.n)
	}
	return newVectorView(j-i, x.inc, x.off+i*x.inc, x.buf), nil
}

// Refs reports the number of live references on the shared buffer, this
// view included. A released view reports zero.
func (x *Vector) Refs() int {
	if x.buf == nil {
		return 0
	}
	return int(x.buf.refs.Load())
}

// Release drops this view's reference on the shared buffer. Calling it is
// optional; the garbage collector reclaims unreferenced buffers regardless.
func (x *Vector) Release() {
	if x.buf != nil {
		x.buf.release()
		x.buf = nil
	}
}

// String formats the elements in order.
func (x *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < x.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x.buf.data[x.off+i*x.inc])
	}
	sb.WriteByte(']')
	return sb.String()
}
