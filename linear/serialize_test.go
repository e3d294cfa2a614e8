package linear_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaef/go-linear/linear"
)

func TestVectorFromSlice(t *testing.T) {
	x, err := linear.VectorFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x.ToSlice())

	_, err = linear.VectorFromSlice(nil)
	assert.Error(t, err)
}

func TestToSliceCopies(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2, 3})
	s := x.ToSlice()
	s[0] = 99
	assert.Equal(t, 1.0, x.At(0))
}

func TestMatrixFromSlices(t *testing.T) {
	m, err := linear.MatrixFromSlices([][]float64{{1, 2, 3}, {4, 5, 6}}, linear.RowMajor)
	require.NoError(t, err)
	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, m.At(1, 2))

	// Column-major input is ordered by columns: two columns of three.
	m, err = linear.MatrixFromSlices([][]float64{{1, 2, 3}, {4, 5, 6}}, linear.ColMajor)
	require.NoError(t, err)
	rows, cols = m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 5.0, m.At(1, 1))
}

func TestMatrixFromSlicesRagged(t *testing.T) {
	_, err := linear.MatrixFromSlices([][]float64{{1, 2}, {3}}, linear.RowMajor)
	require.ErrorIs(t, err, linear.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "index 1")
}

func TestVectorJSONRoundTrip(t *testing.T) {
	x, _ := linear.VectorFromSlice([]float64{1, 2.5, -3})
	b, err := json.Marshal(x)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2.5,-3]`, string(b))

	var y linear.Vector
	require.NoError(t, json.Unmarshal(b, &y))
	assert.Equal(t, x.ToSlice(), y.ToSlice())
}

func TestVectorJSONBadValue(t *testing.T) {
	var y linear.Vector
	err := json.Unmarshal([]byte(`[1,"two",3]`), &y)
	require.ErrorIs(t, err, linear.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "index 1")
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	for _, order := range []linear.Order{linear.RowMajor, linear.ColMajor} {
		m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}}, order)
		b, err := json.Marshal(m)
		require.NoError(t, err)

		var m2 linear.Matrix
		require.NoError(t, json.Unmarshal(b, &m2))
		assert.Equal(t, order, m2.Order())
		assert.Equal(t, m.ToSlices(), m2.ToSlices())
		assert.Equal(t, 3.0, m2.At(1, 0))
	}
}

// TestMatrixJSONOfView marshals a non-contiguous sub-matrix view; the
// encoding reflects the view, not its parent buffer.
func TestMatrixJSONOfView(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, linear.RowMajor)
	s, err := m.Slice(0, 2, 1, 3)
	require.NoError(t, err)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":"row","data":[[2,3],[5,6]]}`, string(b))
}
