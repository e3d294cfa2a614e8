package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaef/go-linear/linear"
)

func TestUnwind(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}}, linear.RowMajor)
	b := mustMatrix(t, [][]float64{{5, 6}, {7, 8}}, linear.ColMajor)
	x, _ := linear.NewVector(8)

	require.NoError(t, linear.Unwind(x, a, b))
	// a contributes row by row, b column by column.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 7, 6, 8}, x.ToSlice())
}

func TestReshape(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2, 3, 4, 5, 6})
	a, _ := linear.NewMatrix(2, 2, linear.RowMajor)
	b, _ := linear.NewMatrix(2, 1, linear.ColMajor)

	require.NoError(t, linear.Reshape(x, a, b))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToSlices())
	assert.Equal(t, 5.0, b.At(0, 0))
	assert.Equal(t, 6.0, b.At(1, 0))
}

// TestUnwindReshapeIdentity round-trips matrices of mixed orders through a
// vector and back.
func TestUnwindReshapeIdentity(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, linear.RowMajor)
	b := mustMatrix(t, [][]float64{{7, 8}, {9, 10}}, linear.ColMajor)
	x, _ := linear.NewVector(10)

	require.NoError(t, linear.Unwind(x, a, b))

	a2, _ := linear.NewMatrix(2, 3, linear.RowMajor)
	b2, _ := linear.NewMatrix(2, 2, linear.ColMajor)
	require.NoError(t, linear.Reshape(x, a2, b2))

	assert.Equal(t, a.ToSlices(), a2.ToSlices())
	assert.Equal(t, b.ToSlices(), b2.ToSlices())
}

func TestUnwindTooLarge(t *testing.T) {
	x, _ := linear.NewVector(3)
	m, _ := linear.NewMatrix(2, 2, linear.RowMajor)
	err := linear.Unwind(x, m)
	assert.ErrorIs(t, err, linear.ErrTooLarge)
}

func TestUnwindInexactFill(t *testing.T) {
	x, _ := linear.NewVector(5)
	m, _ := linear.NewMatrix(2, 2, linear.RowMajor)
	err := linear.Unwind(x, m)
	assert.ErrorIs(t, err, linear.ErrDimensionMismatch)
}

// TestReshapeValidatesBeforeMutation verifies that a failing reshape leaves
// every target untouched, including ones that would have fit.
func TestReshapeValidatesBeforeMutation(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2, 3, 4, 5})
	a := mustMatrix(t, [][]float64{{-1, -2}, {-3, -4}}, linear.RowMajor)
	b, _ := linear.NewMatrix(3, 3, linear.RowMajor)

	err := linear.Reshape(x, a, b)
	require.ErrorIs(t, err, linear.ErrTooLarge)
	assert.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, a.ToSlices())
}

// TestUnwindStridedVector unwinds into a strided sub-view, exercising a
// destination with inc > 1.
func TestUnwindStridedVector(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}}, linear.RowMajor)
	parent := mustMatrix(t, [][]float64{{0, 0}, {0, 0}}, linear.RowMajor)
	col, err := parent.Col(1)
	require.NoError(t, err)

	require.NoError(t, linear.Unwind(col, m))
	assert.Equal(t, [][]float64{{0, 1}, {0, 2}}, parent.ToSlices())
}
