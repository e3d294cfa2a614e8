package linear

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/anaef/go-linear/internal/kernel"
	"github.com/anaef/go-linear/internal/parallel"
)

// par governs the fork-join fan-out of independent per-major-vector passes.
var par = parallel.Default()

// elementaryFunc mutates n strided cells in place.
type elementaryFunc func(n int, x []float64, inc int, alpha float64)

// elementary applies f to a whole vector or to every major vector of a
// matrix. A contiguous matrix is traversed as one run. When ordered is set
// the major vectors are visited strictly in order, which callback-driven
// application relies on; pure handlers may fan out across workers.
func elementary(f elementaryFunc, x Operand, alpha float64, ordered bool) error {
	switch x := x.(type) {
	case *Vector:
		f(x.n, x.data(), x.inc, alpha)
	case *Matrix:
		if x.contiguous() {
			f(x.rows*x.cols, x.data(), 1, alpha)
			return nil
		}
		s := x.axis(x.order)
		if ordered {
			for i := 0; i < s.count; i++ {
				f(s.length, x.buf.data[x.off+i*s.step:], s.inc, alpha)
			}
			return nil
		}
		parallel.For(s.count, func(i int) {
			f(s.length, x.buf.data[x.off+i*s.step:], s.inc, alpha)
		}, par)
	default:
		return fmt.Errorf("%w: vector or matrix expected", ErrTypeMismatch)
	}
	return nil
}

// Shift adds alpha to every element of x.
func Shift(x Operand, alpha float64) error {
	return elementary(shiftHandler, x, alpha, false)
}

func shiftHandler(n int, x []float64, inc int, alpha float64) {
	if inc == 1 {
		for i := 0; i < n; i++ {
			x[i] += alpha
		}
		return
	}
	for i := 0; i < n; i++ {
		x[i*inc] += alpha
	}
}

// Scale multiplies every element of x by alpha.
func Scale(x Operand, alpha float64) error {
	return elementary(func(n int, x []float64, inc int, alpha float64) {
		kernel.Scal(n, alpha, x, inc)
	}, x, alpha, false)
}

// Pow raises every element of x to the power alpha.
func Pow(x Operand, alpha float64) error {
	return elementary(powHandler, x, alpha, false)
}

func powHandler(n int, x []float64, inc int, alpha float64) {
	switch alpha {
	case -1:
		for i := 0; i < n; i++ {
			x[i*inc] = 1 / x[i*inc]
		}
	case 0:
		for i := 0; i < n; i++ {
			x[i*inc] = 1
		}
	case 0.5:
		for i := 0; i < n; i++ {
			x[i*inc] = math.Sqrt(x[i*inc])
		}
	case 1:
	default:
		for i := 0; i < n; i++ {
			x[i*inc] = math.Pow(x[i*inc], alpha)
		}
	}
}

// Exp replaces every element of x with its exponential.
func Exp(x Operand) error {
	return elementary(mapHandler(math.Exp), x, 0, false)
}

// Log replaces every element of x with its natural logarithm. Non-positive
// inputs yield the platform's NaN or infinity, untrapped.
func Log(x Operand) error {
	return elementary(mapHandler(math.Log), x, 0, false)
}

// Sgn replaces every element of x with its sign: 1, -1, or the value itself
// when it is zero or NaN.
func Sgn(x Operand) error {
	return elementary(mapHandler(SgnOf), x, 0, false)
}

// SgnOf returns the sign of v, leaving zero and NaN untouched.
func SgnOf(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return v
}

// Abs replaces every element of x with its absolute value.
func Abs(x Operand) error {
	return elementary(mapHandler(math.Abs), x, 0, false)
}

// Logistic replaces every element of x with the logistic sigmoid 1/(1+e^-v).
func Logistic(x Operand) error {
	return elementary(mapHandler(LogisticOf), x, 0, false)
}

// LogisticOf returns the logistic sigmoid of v.
func LogisticOf(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// Tanh replaces every element of x with its hyperbolic tangent.
func Tanh(x Operand) error {
	return elementary(mapHandler(math.Tanh), x, 0, false)
}

// Softplus replaces every element of x with log(1+e^v).
func Softplus(x Operand) error {
	return elementary(mapHandler(SoftplusOf), x, 0, false)
}

// SoftplusOf returns log(1+e^v), computed so that large positive v does not
// overflow.
func SoftplusOf(v float64) float64 {
	if v > 0 {
		return v + math.Log1p(math.Exp(-v))
	}
	return math.Log1p(math.Exp(v))
}

// Rectifier replaces every element of x with max(v, 0).
func Rectifier(x Operand) error {
	return elementary(mapHandler(RectifierOf), x, 0, false)
}

// RectifierOf returns max(v, 0).
func RectifierOf(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// SetAll assigns alpha to every element of x.
func SetAll(x Operand, alpha float64) error {
	return elementary(func(n int, x []float64, inc int, alpha float64) {
		for i := 0; i < n; i++ {
			x[i*inc] = alpha
		}
	}, x, alpha, false)
}

// Uniform fills x with uniform pseudo-random values in [0, 1).
func Uniform(x Operand) error {
	return elementary(func(n int, x []float64, inc int, _ float64) {
		for i := 0; i < n; i++ {
			x[i*inc] = rand.Float64()
		}
	}, x, 0, true)
}

// Normal fills x with standard normal pseudo-random values.
func Normal(x Operand) error {
	return elementary(func(n int, x []float64, inc int, _ float64) {
		for i := 0; i < n; i++ {
			x[i*inc] = rand.NormFloat64()
		}
	}, x, 0, true)
}

// Apply invokes f exactly once per element, in ascending element order,
// storing each return value back in place before advancing. f must not
// mutate the structure being iterated.
func Apply(x Operand, f func(float64) float64) error {
	return elementary(mapHandler(f), x, 0, true)
}

func mapHandler(f func(float64) float64) elementaryFunc {
	return func(n int, x []float64, inc int, _ float64) {
		if inc == 1 {
			for i := 0; i < n; i++ {
				x[i] = f(x[i])
			}
			return
		}
		for i := 0; i < n; i++ {
			x[i*inc] = f(x[i*inc])
		}
	}
}
