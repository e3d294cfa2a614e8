package linear_test

import (
	"errors"
	"math"
	"testing"

	"github.com/anaef/go-linear/linear"
)

func TestNewVector(t *testing.T) {
	x, err := linear.NewVector(3)
	if err != nil {
		t.Fatalf("NewVector failed: %v", err)
	}
	if x.Len() != 3 {
		t.Errorf("Len() = %d, want 3", x.Len())
	}
	if x.Inc() != 1 {
		t.Errorf("Inc() = %d, want 1", x.Inc())
	}
	for i := 0; i < 3; i++ {
		if x.At(i) != 0 {
			t.Errorf("At(%d) = %g, want 0", i, x.At(i))
		}
	}
}

func TestNewVectorInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := linear.NewVector(n); err == nil {
			t.Errorf("NewVector(%d) succeeded, want error", n)
		}
	}
}

// TestNewVectorHugeSize asks for a length whose byte size overflows; the
// constructor must return an error rather than reach the allocator.
func TestNewVectorHugeSize(t *testing.T) {
	x, err := linear.NewVector(math.MaxInt >> 2)
	if err == nil {
		t.Fatalf("NewVector(%d) succeeded", math.MaxInt>>2)
	}
	if !errors.Is(err, linear.ErrInvalidDimension) {
		t.Errorf("error = %v, want ErrInvalidDimension", err)
	}
	if x != nil {
		t.Error("got a vector alongside the error")
	}
}

func TestVectorSetAt(t *testing.T) {
	x, _ := linear.NewVector(4)
	for i := 0; i < 4; i++ {
		x.Set(i, float64(i+1))
	}
	for i := 0; i < 4; i++ {
		if x.At(i) != float64(i+1) {
			t.Errorf("At(%d) = %g, want %d", i, x.At(i), i+1)
		}
	}
}

func TestVectorAtPanics(t *testing.T) {
	x, _ := linear.NewVector(2)
	defer func() {
		if recover() == nil {
			t.Error("At(2) did not panic")
		}
	}()
	x.At(2)
}

// TestVectorSliceAliases verifies that a sub-vector is a view: writing
// through it is visible in the parent and vice versa.
func TestVectorSliceAliases(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2, 3, 4, 5})
	s, err := x.Slice(1, 4)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("slice length = %d, want 3", s.Len())
	}
	s.Set(0, 20)
	if x.At(1) != 20 {
		t.Errorf("parent At(1) = %g, want 20", x.At(1))
	}
	x.Set(3, 40)
	if s.At(2) != 40 {
		t.Errorf("slice At(2) = %g, want 40", s.At(2))
	}
}

func TestVectorSliceOfSlice(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2, 3, 4, 5, 6})
	s, _ := x.Slice(1, 6)
	ss, err := s.Slice(1, 3)
	if err != nil {
		t.Fatalf("nested Slice failed: %v", err)
	}
	ss.Set(0, 30)
	if x.At(2) != 30 {
		t.Errorf("parent At(2) = %g, want 30", x.At(2))
	}
}

func TestVectorSliceInvalid(t *testing.T) {
	x, _ := linear.NewVector(3)
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {2, 2}, {2, 1}} {
		if _, err := x.Slice(r[0], r[1]); err == nil {
			t.Errorf("Slice(%d,%d) succeeded, want error", r[0], r[1])
		}
	}
}

func TestVectorString(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2.5, -3})
	if got := x.String(); got != "[1, 2.5, -3]" {
		t.Errorf("String() = %q", got)
	}
}

// TestVectorRefs tracks the shared buffer's reference count across view
// creation and release.
func TestVectorRefs(t *testing.T) {
	x, _ := linear.NewVector(4)
	if x.Refs() != 1 {
		t.Fatalf("Refs() = %d after construction, want 1", x.Refs())
	}
	s, _ := x.Slice(0, 2)
	if x.Refs() != 2 || s.Refs() != 2 {
		t.Errorf("Refs() = %d/%d with one view, want 2/2", x.Refs(), s.Refs())
	}
	s.Release()
	if x.Refs() != 1 {
		t.Errorf("Refs() = %d after view release, want 1", x.Refs())
	}
	if s.Refs() != 0 {
		t.Errorf("released view Refs() = %d, want 0", s.Refs())
	}
}

func TestVectorRelease(t *testing.T) {
	x, _ := linear.NewVector(3)
	s, _ := x.Slice(0, 2)
	x.Release()
	// The slice still holds a reference; the buffer stays alive.
	s.Set(0, 1)
	if s.At(0) != 1 {
		t.Errorf("At(0) = %g after parent release, want 1", s.At(0))
	}
	s.Release()
}
