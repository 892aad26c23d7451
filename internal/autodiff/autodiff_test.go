package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// TestLeaf tests that a leaf starts with zero gradient and no operands.
func TestLeaf(t *testing.T) {
	x := autodiff.New(3.5)

	assert.Equal(t, 3.5, x.Data())
	assert.Zero(t, x.Grad())
	assert.Empty(t, x.Operands())
	assert.True(t, x.IsLeaf())
	assert.Equal(t, "", x.Op())

	// Backward on a leaf only seeds it.
	x.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

// TestForward tests the data computed by each primitive.
func TestForward(t *testing.T) {
	a := autodiff.New(-4)
	b := autodiff.New(2)

	tests := []struct {
		name string
		got  *autodiff.Value
		want float64
		op   string
	}{
		{"Add", autodiff.Add(a, b), -2, "+"},
		{"Mul", autodiff.Mul(a, b), -8, "*"},
		{"Pow", autodiff.Pow(b, autodiff.Constant(3)), 8, "**3"},
		{"ReLU_Negative", autodiff.ReLU(a), 0, "relu"},
		{"ReLU_Positive", autodiff.ReLU(b), 2, "relu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Data())
			assert.Zero(t, tt.got.Grad())
			assert.Equal(t, tt.op, tt.got.Op())
		})
	}
}

// TestOperandsOrdered tests that operands keep call order and duplicates.
func TestOperandsOrdered(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(2)

	c := autodiff.Add(a, b)
	ops := c.Operands()
	require.Len(t, ops, 2)
	assert.Same(t, a, ops[0])
	assert.Same(t, b, ops[1])

	// Equal data must not collapse operands.
	d := autodiff.Mul(a, a)
	require.Len(t, d.Operands(), 2)

	// Pow exposes only the base as an operand.
	k := autodiff.Constant(2)
	p := autodiff.Pow(a, k)
	require.Len(t, p.Operands(), 1)
	assert.Same(t, a, p.Operands()[0])

	// Operands returns a copy.
	ops[0] = nil
	assert.Same(t, a, c.Operands()[0])
}

// TestBackward_EndToEnd tests the reference expression e = (a + b) + a*b.
func TestBackward_EndToEnd(t *testing.T) {
	a := autodiff.New(-4)
	b := autodiff.New(2)
	c := autodiff.Add(a, b)
	d := autodiff.Mul(a, b)
	e := autodiff.Add(c, d)

	assert.Equal(t, -2.0, c.Data())
	assert.Equal(t, -8.0, d.Data())
	assert.Equal(t, -10.0, e.Data())

	autodiff.Backward(e)

	assert.Equal(t, 1.0, e.Grad())
	assert.Equal(t, 1.0, d.Grad())
	assert.Equal(t, 1.0, c.Grad())
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, -3.0, b.Grad())
}

// TestBackward_SumRule tests d(a+b)/da = d(a+b)/db = 1, scaled by the upstream grad.
func TestBackward_SumRule(t *testing.T) {
	const g = 2.5
	a := autodiff.New(1.5)
	b := autodiff.New(-7)
	c := autodiff.Add(a, b)

	// Scaling by a constant seeds c.grad with g.
	autodiff.Mul(c, autodiff.Constant(g)).Backward()

	assert.Equal(t, g, c.Grad())
	assert.Equal(t, g, a.Grad())
	assert.Equal(t, g, b.Grad())
}

// TestBackward_ProductRule tests d(a*b)/da = b and d(a*b)/db = a.
func TestBackward_ProductRule(t *testing.T) {
	const g = -1.5
	a := autodiff.New(3)
	b := autodiff.New(-0.5)
	c := autodiff.Mul(a, b)

	autodiff.Mul(c, autodiff.Constant(g)).Backward()

	assert.Equal(t, g, c.Grad())
	assert.InDelta(t, b.Data()*g, a.Grad(), 1e-12)
	assert.InDelta(t, a.Data()*g, b.Grad(), 1e-12)
}

// TestBackward_PowerRule tests d(a^k)/da = k * a^(k-1).
func TestBackward_PowerRule(t *testing.T) {
	tests := []struct {
		name string
		a, k float64
	}{
		{"Square", 3, 2},
		{"Cube_Negative", -2, 3},
		{"Reciprocal", 4, -1},
		{"SquareRoot", 9, 0.5},
		{"Fractional", 2.5, 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autodiff.New(tt.a)
			k := autodiff.Constant(tt.k)
			c := autodiff.Pow(a, k)
			c.Backward()

			assert.InDelta(t, math.Pow(tt.a, tt.k), c.Data(), 1e-12)
			assert.InDelta(t, tt.k*math.Pow(tt.a, tt.k-1), a.Grad(), 1e-12)
			assert.Zero(t, k.Grad(), "exponent must not receive gradient")
		})
	}
}

// TestPow_AtZero tests the IEEE 754 gradients of a^k at a = 0.
func TestPow_AtZero(t *testing.T) {
	a := autodiff.New(0)
	c := a.Pow(0)
	c.Backward()
	assert.Equal(t, 1.0, c.Data())
	assert.True(t, math.IsNaN(a.Grad()), "0 * 0^-1 is NaN")

	b := autodiff.New(0)
	d := b.Pow(2)
	d.Backward()
	assert.Zero(t, b.Grad())

	e := autodiff.New(0)
	f := e.Pow(0.5)
	f.Backward()
	assert.True(t, math.IsInf(e.Grad(), 1))
}

// TestBackward_ReLUGate tests that ReLU passes the gradient through only for positive input.
func TestBackward_ReLUGate(t *testing.T) {
	const g = 4.0

	tests := []struct {
		name     string
		input    float64
		wantGrad float64
	}{
		{"Positive", 1.25, g},
		{"Negative", -3, 0},
		{"Zero", 0, 0},
		{"LargePositive", 1e6, g},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autodiff.New(tt.input)
			c := autodiff.ReLU(a)
			autodiff.Mul(c, autodiff.Constant(g)).Backward()

			assert.Equal(t, g, c.Grad())
			assert.Equal(t, tt.wantGrad, a.Grad())
		})
	}
}

// TestBackward_SharedOperand tests that a node used twice accumulates both contributions.
func TestBackward_SharedOperand(t *testing.T) {
	a := autodiff.New(1.5)
	b := autodiff.New(-2)
	c := autodiff.New(5)

	y := autodiff.Add(autodiff.Mul(a, b), autodiff.Mul(a, c))
	y.Backward()

	assert.Equal(t, b.Data()+c.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
	assert.Equal(t, a.Data(), c.Grad())
}

// TestBackward_SameNodeBothOperands tests y = x + x and y = x * x.
func TestBackward_SameNodeBothOperands(t *testing.T) {
	x := autodiff.New(3)
	autodiff.Add(x, x).Backward()
	assert.Equal(t, 2.0, x.Grad())

	z := autodiff.New(3)
	autodiff.Mul(z, z).Backward()
	assert.Equal(t, 6.0, z.Grad())
}

// TestBackward_EqualDataNodesStayDistinct tests that leaves with equal data get independent grads.
func TestBackward_EqualDataNodesStayDistinct(t *testing.T) {
	x1 := autodiff.New(2)
	x2 := autodiff.New(2)
	w1 := autodiff.New(3)
	w2 := autodiff.New(-5)

	// y = x1*w1 + x2*w2; x1 and x2 are structurally identical leaves.
	y := autodiff.Add(autodiff.Mul(x1, w1), autodiff.Mul(x2, w2))
	y.Backward()

	assert.Equal(t, 3.0, x1.Grad())
	assert.Equal(t, -5.0, x2.Grad())
	assert.Len(t, autodiff.TopologicalOrder(y), 7)
}

// TestBackward_ReadsCurrentOperandData tests that rules see operand data at backward time.
func TestBackward_ReadsCurrentOperandData(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)
	c := autodiff.Mul(a, b)

	b.SetData(10)
	c.Backward()

	assert.Equal(t, 6.0, c.Data(), "forward data is fixed at construction")
	assert.Equal(t, 10.0, a.Grad())
}

// TestBackward_Accumulates tests that a second pass without zeroing adds up.
func TestBackward_Accumulates(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(5)
	c := autodiff.Mul(a, b)

	c.Backward()
	require.Equal(t, 5.0, a.Grad())

	// c.grad is reseeded to 1, but c's rule runs again and adds to a.
	c.Backward()
	assert.Equal(t, 10.0, a.Grad())

	autodiff.ZeroGrad([]*autodiff.Value{a, b, c})
	c.Backward()
	assert.Equal(t, 5.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

// TestTopologicalOrder tests that every node appears once, after its operands.
func TestTopologicalOrder(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	c := autodiff.Add(a, b)
	d := autodiff.Mul(c, a)
	e := autodiff.Add(d, c).ReLU()

	topo := autodiff.TopologicalOrder(e)
	require.Len(t, topo, 6)
	assert.Same(t, e, topo[len(topo)-1])

	pos := make(map[*autodiff.Value]int, len(topo))
	for i, v := range topo {
		_, dup := pos[v]
		require.False(t, dup, "node visited twice: %v", v)
		pos[v] = i
	}
	for _, v := range topo {
		for _, operand := range v.Operands() {
			assert.Less(t, pos[operand], pos[v], "%v must come after %v", v, operand)
		}
	}
}

// TestDerived tests Neg, Sub, Div and their gradients.
func TestDerived(t *testing.T) {
	a := autodiff.New(6)
	b := autodiff.New(4)

	neg := a.Neg()
	assert.Equal(t, -6.0, neg.Data())

	sub := a.Sub(b)
	assert.Equal(t, 2.0, sub.Data())
	sub.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())

	autodiff.ZeroGrad([]*autodiff.Value{a, b})
	div := a.Div(b)
	assert.InDelta(t, 1.5, div.Data(), 1e-12)
	div.Backward()
	assert.InDelta(t, 1.0/4.0, a.Grad(), 1e-12)
	assert.InDelta(t, -6.0/16.0, b.Grad(), 1e-12)
}

// TestDiv_ByZero tests that division by zero follows IEEE 754.
func TestDiv_ByZero(t *testing.T) {
	a := autodiff.New(1)
	zero := autodiff.New(0)

	assert.True(t, math.IsInf(a.Div(zero).Data(), 1))
	assert.True(t, math.IsNaN(zero.Div(zero).Data()))
}

// TestScalarHelpers tests AddScalar and MulScalar.
func TestScalarHelpers(t *testing.T) {
	x := autodiff.New(3)
	y := x.MulScalar(4).AddScalar(1) // 4x + 1

	assert.Equal(t, 13.0, y.Data())
	y.Backward()
	assert.Equal(t, 4.0, x.Grad())
}

// TestSumAndDot tests the aggregate helpers.
func TestSumAndDot(t *testing.T) {
	assert.Equal(t, 0.0, autodiff.Sum().Data())

	xs := []*autodiff.Value{autodiff.New(1), autodiff.New(2), autodiff.New(3)}
	ws := []*autodiff.Value{autodiff.New(4), autodiff.New(5), autodiff.New(6)}

	s := autodiff.Sum(xs...)
	assert.Equal(t, 6.0, s.Data())

	d := autodiff.Dot(ws, xs)
	assert.Equal(t, 32.0, d.Data())

	d.Backward()
	for i := range xs {
		assert.Equal(t, ws[i].Data(), xs[i].Grad())
		assert.Equal(t, xs[i].Data(), ws[i].Grad())
	}

	assert.Panics(t, func() {
		autodiff.Dot(xs, ws[:2])
	})
}

// TestString tests the diagnostic rendering.
func TestString(t *testing.T) {
	v := autodiff.Add(autodiff.New(1), autodiff.New(2))
	v.Backward()

	assert.Equal(t, `Value(data=3, grad=1, op="+")`, v.String())
}

// TestBackward_DeepChain tests a long chain does not lose gradient.
func TestBackward_DeepChain(t *testing.T) {
	x := autodiff.New(1)
	y := x
	const n = 10000
	for i := 0; i < n; i++ {
		y = y.AddScalar(1)
	}
	y.Backward()

	assert.Equal(t, float64(n+1), y.Data())
	assert.Equal(t, 1.0, x.Grad())
}
