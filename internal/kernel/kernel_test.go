package kernel

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDot(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{3, 2, 1}
	if got := Dot(3, x, 1, y, 1); got != 10 {
		t.Errorf("Dot = %g, want 10", got)
	}
}

func TestDotStrided(t *testing.T) {
	x := []float64{1, 0, 2, 0, 3}
	y := []float64{1, 1, 1}
	if got := Dot(3, x, 2, y, 1); got != 6 {
		t.Errorf("strided Dot = %g, want 6", got)
	}
}

func TestScalAxpy(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{10, 20}
	Scal(2, 3, y, 1)
	Axpy(2, 1, x, 1, y, 1)
	if y[0] != 31 || y[1] != 62 {
		t.Errorf("y = %v, want [31 62]", y)
	}
}

// TestGerColMajor applies a rank-1 update to column-major storage and reads
// the result back by hand.
func TestGerColMajor(t *testing.T) {
	// 2x3 zero matrix, column-major, lda = 2.
	a := make([]float64, 6)
	x := []float64{1, 2}
	y := []float64{3, 4, 5}
	Ger(false, 2, 3, 1, x, 1, y, 1, a, 2)
	want := [][]float64{{3, 4, 5}, {6, 8, 10}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if a[j*2+i] != want[i][j] {
				t.Errorf("a(%d,%d) = %g, want %g", i, j, a[j*2+i], want[i][j])
			}
		}
	}
}

// TestGemvBothOrders multiplies the same logical matrix stored both ways.
func TestGemvBothOrders(t *testing.T) {
	// [[1,2],[3,4]] times [1,1].
	row := []float64{1, 2, 3, 4}
	col := []float64{1, 3, 2, 4}
	x := []float64{1, 1}

	y := make([]float64, 2)
	Gemv(true, false, 2, 2, 1, row, 2, x, 1, 0, y, 1)
	if y[0] != 3 || y[1] != 7 {
		t.Errorf("row-major y = %v, want [3 7]", y)
	}

	y = make([]float64, 2)
	Gemv(false, false, 2, 2, 1, col, 2, x, 1, 0, y, 1)
	if y[0] != 3 || y[1] != 7 {
		t.Errorf("col-major y = %v, want [3 7]", y)
	}

	y = make([]float64, 2)
	Gemv(false, true, 2, 2, 1, col, 2, x, 1, 0, y, 1)
	if y[0] != 4 || y[1] != 6 {
		t.Errorf("col-major trans y = %v, want [4 6]", y)
	}
}

// TestGemmColMajor checks the swapped-operand translation against the
// row-major result.
func TestGemmColMajor(t *testing.T) {
	// [[1,2],[3,4]] * [[5,6],[7,8]] = [[19,22],[43,50]].
	a := []float64{1, 3, 2, 4}
	b := []float64{5, 7, 6, 8}
	c := make([]float64, 4)
	Gemm(false, false, false, 2, 2, 2, 1, a, 2, b, 2, 0, c, 2)
	want := []float64{19, 43, 22, 50}
	for i := range want {
		if c[i] != want[i] {
			t.Errorf("c = %v, want %v", c, want)
			break
		}
	}
}

func TestGemmColMajorTrans(t *testing.T) {
	// Aᵀ * B with A = [[1,3],[2,4]] gives the same product as above.
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 7, 6, 8}
	c := make([]float64, 4)
	Gemm(false, true, false, 2, 2, 2, 1, a, 2, b, 2, 0, c, 2)
	want := []float64{19, 43, 22, 50}
	for i := range want {
		if c[i] != want[i] {
			t.Errorf("c = %v, want %v", c, want)
			break
		}
	}
}

func TestGesvColMajor(t *testing.T) {
	// x + 2y = 7, 2x - y = 9.
	a := []float64{1, 2, 2, -1}
	b := []float64{7, 9}
	if !Gesv(false, 2, 1, a, 2, b, 2) {
		t.Fatal("Gesv reported singular")
	}
	if !almostEqual(b[0], 5, 1e-12) || !almostEqual(b[1], 1, 1e-12) {
		t.Errorf("solution = %v, want [5 1]", b)
	}
}

func TestGesvSingular(t *testing.T) {
	a := []float64{1, 2, 2, 4}
	b := []float64{1, 2}
	if Gesv(true, 2, 1, a, 2, b, 1) {
		t.Error("Gesv succeeded on a singular system")
	}
}

func TestDetSignAndValue(t *testing.T) {
	// [[0,1],[1,0]] is a single row swap: determinant -1.
	a := []float64{0, 1, 1, 0}
	if got := Det(true, 2, a, 2); !almostEqual(got, -1, 1e-12) {
		t.Errorf("Det = %g, want -1", got)
	}
	// The input is preserved.
	if a[0] != 0 || a[1] != 1 {
		t.Errorf("input modified: %v", a)
	}
}

func TestDetLeadingDimension(t *testing.T) {
	// 2x2 diagonal block inside a wider row-major buffer, lda = 3.
	a := []float64{2, 0, -1, 0, 3, -1}
	if got := Det(true, 2, a, 3); !almostEqual(got, 6, 1e-12) {
		t.Errorf("Det = %g, want 6", got)
	}
}

func TestInvRoundTrip(t *testing.T) {
	a := []float64{4, 7, 2, 6}
	orig := []float64{4, 7, 2, 6}
	if !Inv(true, 2, a, 2) {
		t.Fatal("Inv reported singular")
	}
	c := make([]float64, 4)
	Gemm(true, false, false, 2, 2, 2, 1, orig, 2, a, 2, 0, c, 2)
	want := []float64{1, 0, 0, 1}
	for i := range want {
		if !almostEqual(c[i], want[i], 1e-9) {
			t.Errorf("A*inv(A) = %v", c)
			break
		}
	}
}

func TestGelsColMajor(t *testing.T) {
	// Fit y = a + b*t through (0,1), (1,3), (2,5), (3,7).
	a := []float64{1, 1, 1, 1, 0, 1, 2, 3}
	b := []float64{1, 3, 5, 7}
	if !Gels(false, false, 4, 2, 1, a, 4, b, 4) {
		t.Fatal("Gels reported rank deficient")
	}
	if !almostEqual(b[0], 1, 1e-9) || !almostEqual(b[1], 2, 1e-9) {
		t.Errorf("coefficients = %v, want [1 2]", b[:2])
	}
}

func TestPackUnpack(t *testing.T) {
	// Column-major 2x3 with ld 4: columns start every 4 cells.
	data := []float64{1, 2, 0, 0, 3, 4, 0, 0, 5, 6, 0, 0}
	p := pack(false, 2, 3, data, 4)
	want := []float64{1, 3, 5, 2, 4, 6}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("pack = %v, want %v", p, want)
		}
	}
	out := make([]float64, 12)
	unpack(false, 2, 3, p, out, 4)
	for i := range data {
		if out[i] != data[i] {
			t.Errorf("unpack = %v, want %v", out, data)
			break
		}
	}
}
