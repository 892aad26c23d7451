package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
)

// MLP is a multi-layer perceptron: each layer's outputs feed the next layer.
//
// Example:
//
//	r := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, r) // 3 -> 4 -> 4 -> 1
//	out := model.Forward(inputs)
//	out[0].Backward()
//
// Hidden layers use ReLU. The last layer is linear so outputs are not
// clamped at zero.
type MLP struct {
	layers []*Layer
	fanIn  int
}

// NewMLP creates fanIn -> sizes[0] -> sizes[1] -> ... layers.
func NewMLP(fanIn int, sizes []int, r RandSource) *MLP {
	checkSize("nn.NewMLP", "fan-in", fanIn)

	layers := make([]*Layer, len(sizes))
	in := fanIn
	for i, out := range sizes {
		layers[i] = NewLayer(in, out, i != len(sizes)-1, r)
		in = out
	}
	return &MLP{
		layers: layers,
		fanIn:  fanIn,
	}
}

// SetParallel applies cfg to every layer.
func (m *MLP) SetParallel(cfg parallel.Config) {
	for _, l := range m.layers {
		l.SetParallel(cfg)
	}
}

// Forward applies all layers in sequence and returns the last layer's outputs.
//
// With no layers the inputs are returned unchanged. Panics if len(x)
// differs from the fan-in.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	if len(x) != m.fanIn {
		panic(fmt.Sprintf("MLP.Forward: got %d inputs, want %d", len(x), m.fanIn))
	}
	out := x
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Len returns the number of layers.
func (m *MLP) Len() int {
	return len(m.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (m *MLP) Layer(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		panic("MLP.Layer: index out of bounds")
	}
	return m.layers[index]
}

// Parameters returns all parameters, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad clears the gradients of every parameter.
func (m *MLP) ZeroGrad() {
	zeroGrad(m)
}

func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
