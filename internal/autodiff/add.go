package autodiff

// Add returns a + b.
//
// Backward:
//   - d(a+b)/da = 1, so a.grad += out.grad
//   - d(a+b)/db = 1, so b.grad += out.grad
func Add(a, b *Value) *Value {
	out := newValue(a.data+b.data, "+", a, b)
	out.backward = func() {
		a.grad += out.grad
		b.grad += out.grad
	}
	return out
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return Add(v, other)
}

// AddScalar returns v + s, with s wrapped in a constant leaf.
func (v *Value) AddScalar(s float64) *Value {
	return Add(v, Constant(s))
}
