package autodiff

import "fmt"

// Neg returns -a, computed as a * -1.
func Neg(a *Value) *Value {
	return Mul(a, Constant(-1))
}

// Sub returns a - b, computed as a + (-b).
func Sub(a, b *Value) *Value {
	return Add(a, Neg(b))
}

// Div returns a / b, computed as a * b^-1.
//
// Division by zero follows IEEE 754 and yields ±Inf or NaN.
func Div(a, b *Value) *Value {
	return Mul(a, Pow(b, Constant(-1)))
}

// Neg returns -v.
func (v *Value) Neg() *Value {
	return Neg(v)
}

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value {
	return Sub(v, other)
}

// Div returns v / other.
func (v *Value) Div(other *Value) *Value {
	return Div(v, other)
}

// Sum folds vs with Add from left to right.
//
// An empty sum is a constant 0 leaf.
func Sum(vs ...*Value) *Value {
	if len(vs) == 0 {
		return Constant(0)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = Add(acc, v)
	}
	return acc
}

// Dot returns sum(a[i] * b[i]).
//
// Panics if a and b differ in length.
func Dot(a, b []*Value) *Value {
	if len(a) != len(b) {
		panic(fmt.Sprintf("autodiff.Dot: length mismatch %d != %d", len(a), len(b)))
	}
	terms := make([]*Value, len(a))
	for i := range a {
		terms[i] = Mul(a[i], b[i])
	}
	return Sum(terms...)
}
