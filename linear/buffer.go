package linear

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/pbnjay/memory"
)

// buffer is a reference-counted block of cells. Exactly one vector or matrix
// owns a freshly allocated buffer; every view derived from it retains the
// same buffer, so the block stays reachable for as long as any alias exists.
type buffer struct {
	data []float64
	refs atomic.Int32
}

// newBuffer allocates a zero-filled block of n cells with an initial
// reference count of one.
func newBuffer(n int) (*buffer, error) {
	if n > math.MaxInt/8 {
		return nil, fmt.Errorf("%w: %d cells overflow", ErrInvalidDimension, n)
	}
	if bytes := uint64(n) * 8; bytes > memory.TotalMemory() {
		return nil, fmt.Errorf("%w: cannot allocate %d cells", ErrOutOfMemory, n)
	}
	b := &buffer{data: make([]float64, n)}
	b.refs.Store(1)
	return b, nil
}

func (b *buffer) retain() {
	b.refs.Add(1)
}

// release drops one reference and severs the data block once no alias
// remains. Releasing is optional: an unreleased buffer is reclaimed by the
// garbage collector together with its last view.
func (b *buffer) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}
