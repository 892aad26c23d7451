package autodiff

import (
	"fmt"
	"math"
)

// Pow returns a raised to the constant exponent k.
//
// k is a node only for interface uniformity. It is not an operand of the
// result and never receives gradient.
//
// Backward:
//   - d(a^k)/da = k * a^(k-1), so a.grad += k * a^(k-1) * out.grad
//
// The rule follows IEEE 754 like Div: at a = 0 a negative k-1 gives ±Inf,
// and k = 0 gives 0 * Inf = NaN.
func Pow(a, k *Value) *Value {
	out := newValue(math.Pow(a.data, k.data), fmt.Sprintf("**%g", k.data), a)
	out.backward = func() {
		a.grad += k.data * math.Pow(a.data, k.data-1) * out.grad
	}
	return out
}

// Pow returns v raised to the constant exponent k.
func (v *Value) Pow(k float64) *Value {
	return Pow(v, Constant(k))
}
