package linear

import "errors"

// Errors reported by the package. Operations wrap these with context;
// match them with errors.Is.
var (
	// ErrInvalidDimension reports a non-positive or overflowing size.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrIndexOutOfRange reports an index outside its valid bound.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch reports incompatible operand shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOrderMismatch reports mixed row-major/column-major operands where
	// identical order is required.
	ErrOrderMismatch = errors.New("order mismatch")

	// ErrTooLarge reports a structural operation whose source exceeds the
	// target's capacity.
	ErrTooLarge = errors.New("too large")

	// ErrOutOfMemory reports an allocation request beyond available memory.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrSingular reports a kernel failure, typically a matrix that is
	// singular at machine precision. Operands of a failed kernel call are
	// left in an undefined state.
	ErrSingular = errors.New("singular matrix")

	// ErrTypeMismatch reports an operand that is neither a vector nor a
	// matrix where one is required.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidArgument reports an argument outside its valid domain,
	// such as a ddof not smaller than the sequence length.
	ErrInvalidArgument = errors.New("invalid argument")
)
