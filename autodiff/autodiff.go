// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(-4)
//	    b := autodiff.New(2)
//	    e := autodiff.Add(autodiff.Add(a, b), autodiff.Mul(a, b))
//
//	    autodiff.Backward(e)
//	    fmt.Println(a.Grad(), b.Grad()) // 3 -3
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// New creates a leaf node for an input or parameter.
func New(x float64) *Value {
	return autodiff.New(x)
}

// Constant creates a leaf node for a fixed scalar such as an exponent.
func Constant(x float64) *Value {
	return autodiff.Constant(x)
}

// Primitives

// Add returns a + b.
func Add(a, b *Value) *Value {
	return autodiff.Add(a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	return autodiff.Mul(a, b)
}

// Pow returns a raised to the constant exponent k.
// At a = 0 the gradient follows IEEE 754, so k = 0 yields NaN.
func Pow(a, k *Value) *Value {
	return autodiff.Pow(a, k)
}

// ReLU returns max(0, a).
func ReLU(a *Value) *Value {
	return autodiff.ReLU(a)
}

// Derived operations

// Neg returns -a.
func Neg(a *Value) *Value {
	return autodiff.Neg(a)
}

// Sub returns a - b.
func Sub(a, b *Value) *Value {
	return autodiff.Sub(a, b)
}

// Div returns a / b.
func Div(a, b *Value) *Value {
	return autodiff.Div(a, b)
}

// Sum returns the sum of vs, or a constant 0 for no arguments.
func Sum(vs ...*Value) *Value {
	return autodiff.Sum(vs...)
}

// Dot returns sum(a[i] * b[i]). Panics on length mismatch.
func Dot(a, b []*Value) *Value {
	return autodiff.Dot(a, b)
}

// Backward pass

// Backward computes the gradient of root with respect to every node it depends on.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrad resets the gradient of every node in params.
func ZeroGrad(params []*Value) {
	autodiff.ZeroGrad(params)
}
