package linear

import "fmt"

// Order selects whether the contiguous runs of a matrix are its rows or its
// columns. It also names a logical broadcast axis, independent of how an
// operand happens to be stored.
type Order int

const (
	RowMajor Order = iota
	ColMajor
)

// String returns "row" or "col".
func (o Order) String() string {
	if o == RowMajor {
		return "row"
	}
	return "col"
}

// ParseOrder converts "row" or "col" into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "row":
		return RowMajor, nil
	case "col":
		return ColMajor, nil
	}
	return 0, fmt.Errorf("%w: order %q", ErrInvalidArgument, s)
}

// Operand is a value the dispatch layer accepts: a *Vector or a *Matrix.
type Operand interface {
	isOperand()
}

func (*Vector) isOperand() {}
func (*Matrix) isOperand() {}
