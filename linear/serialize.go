package linear

import (
	"encoding/json"
	"fmt"
)

// ToSlice copies the vector's elements into a fresh slice.
func (x *Vector) ToSlice() []float64 {
	out := make([]float64, x.n)
	for i := range out {
		out[i] = x.buf.data[x.off+i*x.inc]
	}
	return out
}

// ToSlices copies the matrix into nested slices ordered by the major
// dimension: one inner slice per major vector, each of minor-dimension
// length.
func (m *Matrix) ToSlices() [][]float64 {
	s := m.axis(m.order)
	out := make([][]float64, s.count)
	for i := range out {
		row := make([]float64, s.length)
		copy(row, m.buf.data[m.off+i*s.step:m.off+i*s.step+s.length])
		out[i] = row
	}
	return out
}

// VectorFromSlice allocates a vector holding a copy of data.
func VectorFromSlice(data []float64) (*Vector, error) {
	x, err := NewVector(len(data))
	if err != nil {
		return nil, err
	}
	copy(x.buf.data, data)
	return x, nil
}

// MatrixFromSlices allocates a matrix from nested slices ordered by the
// major dimension of the requested order. Every inner slice must have the
// same length; ragged input is rejected with the offending position.
func MatrixFromSlices(data [][]float64, order Order) (*Matrix, error) {
	major := len(data)
	if major < 1 {
		return nil, fmt.Errorf("%w: no major vectors", ErrInvalidDimension)
	}
	minor := len(data[0])
	if minor < 1 {
		return nil, fmt.Errorf("%w: empty vector at index 0", ErrInvalidDimension)
	}
	rows, cols := major, minor
	if order == ColMajor {
		rows, cols = minor, major
	}
	m, err := NewMatrix(rows, cols, order)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		if len(v) != minor {
			return nil, fmt.Errorf("%w: vector at index %d has %d elements, expected %d", ErrDimensionMismatch, i, len(v), minor)
		}
		copy(m.buf.data[i*m.ld:], v)
	}
	return m, nil
}

// MarshalJSON encodes the vector as a flat array of numbers.
func (x *Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.ToSlice())
}

// UnmarshalJSON decodes a flat array of numbers into a fresh vector,
// replacing any previous contents.
func (x *Vector) UnmarshalJSON(b []byte) error {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 1 {
		return fmt.Errorf("%w: empty vector", ErrInvalidDimension)
	}
	data := make([]float64, len(raw))
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: value at index %d is not a number", ErrInvalidArgument, i)
		}
		data[i] = f
	}
	fresh, err := VectorFromSlice(data)
	if err != nil {
		return err
	}
	*x = *fresh
	return nil
}

type matrixJSON struct {
	Order string      `json:"order"`
	Data  [][]float64 `json:"data"`
}

// MarshalJSON encodes the matrix as its major-ordered nested arrays tagged
// with the storage order.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Order: m.order.String(), Data: m.ToSlices()})
}

// UnmarshalJSON decodes an order-tagged nested array into a fresh matrix,
// replacing any previous contents.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var raw matrixJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	order, err := ParseOrder(raw.Order)
	if err != nil {
		return err
	}
	fresh, err := MatrixFromSlices(raw.Data, order)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}
