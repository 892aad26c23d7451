// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every operation eagerly computes its result and returns a new *Value that
// remembers its operands and a backward rule. Calling Backward on an output
// walks the graph in reverse topological order and accumulates the partial
// derivative of that output into the Grad of every reachable node.
//
// Architecture:
//   - Value: graph vertex holding data, accumulated gradient, ordered operands
//     and the closure that pushes gradient onto those operands
//   - Primitives: Add, Mul, Pow, ReLU and New (leaf)
//   - Derived ops: Neg, Sub, Div, Sum, Dot, built only from primitives
//   - Backward: identity-keyed DFS topological sort, then reverse sweep
//
// Usage:
//
//	a := autodiff.New(-4)
//	b := autodiff.New(2)
//	e := a.Add(b).Add(a.Mul(b)) // e = (a + b) + a*b
//	e.Backward()
//	fmt.Println(a.Grad()) // de/da = 1 + b = 3
//
// Vertices are identified by pointer. Two nodes holding equal data are still
// distinct vertices and receive independent gradients.
//
// The graph is assumed to be acyclic. Operators only ever point at already
// existing nodes, so a cycle cannot be built through this API.
package autodiff

import "fmt"

// Value is a scalar vertex in the computation graph.
type Value struct {
	data     float64
	grad     float64
	operands []*Value // Ordered; the same node may appear twice (x + x).
	op       string   // Diagnostic label, empty for leaves.
	backward func()   // Pushes this node's grad onto its operands.
}

func noop() {}

// New creates a leaf node holding x.
//
// Leaves are used for inputs and learnable parameters.
func New(x float64) *Value {
	return newValue(x, "")
}

// Constant creates a leaf node for a fixed scalar such as an exponent.
//
// It is the same as New; the separate name documents intent at call sites.
func Constant(x float64) *Value {
	return New(x)
}

// newValue allocates a result node with a zero gradient and a no-op rule.
func newValue(data float64, op string, operands ...*Value) *Value {
	return &Value{
		data:     data,
		operands: operands,
		op:       op,
		backward: noop,
	}
}

// Data returns the scalar held by v.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar of a leaf, e.g. when loading parameters.
//
// Nodes already computed from v keep their data, but their backward rules
// read v's current data.
func (v *Value) SetData(x float64) {
	v.data = x
}

// Grad returns the accumulated gradient of the last backward root with respect to v.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the gradient of v to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the label of the operation that produced v, or "" for a leaf.
func (v *Value) Op() string {
	return v.op
}

// Operands returns a copy of the ordered inputs v was computed from.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// String renders v for debugging.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%q)", v.data, v.grad, v.op)
}
