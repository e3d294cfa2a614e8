package linear

import "fmt"

// checkUnwind validates that the matrices exactly fill the vector before any
// element moves: each matrix must fit into the remaining capacity, and the
// last one must land exactly on the vector's end.
func checkUnwind(x *Vector, ms []*Matrix) error {
	total := 0
	for i, m := range ms {
		size := m.rows * m.cols
		if total+size > x.n {
			return fmt.Errorf("%w: matrix %d holds %d elements, %d cells remain", ErrTooLarge, i, size, x.n-total)
		}
		total += size
	}
	if total != x.n {
		return fmt.Errorf("%w: matrices hold %d elements, vector has %d", ErrDimensionMismatch, total, x.n)
	}
	return nil
}

// Unwind flattens the matrices, each traversed in its own major order, into
// consecutive elements of x. The matrices must exactly fill the vector.
func Unwind(x *Vector, ms ...*Matrix) error {
	if err := checkUnwind(x, ms); err != nil {
		return err
	}
	d := x.off
	for _, m := range ms {
		s := m.axis(m.order)
		for i := 0; i < s.count; i++ {
			src := m.buf.data[m.off+i*s.step:]
			for j := 0; j < s.length; j++ {
				x.buf.data[d] = src[j]
				d += x.inc
			}
		}
	}
	return nil
}

// Reshape writes consecutive elements of x into the matrices, each traversed
// in its own major order. It is the inverse of Unwind and has the same
// exact-fill requirement.
func Reshape(x *Vector, ms ...*Matrix) error {
	if err := checkUnwind(x, ms); err != nil {
		return err
	}
	s := x.off
	for _, m := range ms {
		a := m.axis(m.order)
		for i := 0; i < a.count; i++ {
			dst := m.buf.data[m.off+i*a.step:]
			for j := 0; j < a.length; j++ {
				dst[j] = x.buf.data[s]
				s += x.inc
			}
		}
	}
	return nil
}
