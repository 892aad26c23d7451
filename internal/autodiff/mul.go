package autodiff

// Mul returns a * b.
//
// Backward:
//   - d(a*b)/da = b, so a.grad += b.data * out.grad
//   - d(a*b)/db = a, so b.grad += a.data * out.grad
//
// The rule reads the operands' data when it runs, not a copy taken here.
func Mul(a, b *Value) *Value {
	out := newValue(a.data*b.data, "*", a, b)
	out.backward = func() {
		a.grad += b.data * out.grad
		b.grad += a.data * out.grad
	}
	return out
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return Mul(v, other)
}

// MulScalar returns v * s, with s wrapped in a constant leaf.
func (v *Value) MulScalar(s float64) *Value {
	return Mul(v, Constant(s))
}
