package autodiff

import "math"

// ReLU returns max(0, a).
//
// Backward:
//   - d(ReLU(a))/da = 1 if out.data > 0, else 0
//
// At a == 0 the output is 0, so the gate is closed and a receives nothing.
func ReLU(a *Value) *Value {
	out := newValue(math.Max(0, a.data), "relu", a)
	out.backward = func() {
		if out.data > 0 {
			a.grad += out.grad
		}
	}
	return out
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	return ReLU(v)
}
