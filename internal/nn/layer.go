package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
)

// Layer is fanOut neurons that all read the same fanIn inputs.
type Layer struct {
	neurons []*Neuron
	fanIn   int
	par     parallel.Config
}

// NewLayer creates a layer of fanOut neurons, each with fanIn inputs.
//
// nonlinear applies ReLU to every neuron. NewMLP passes false for its last
// layer so the network output is not clamped at 0.
//
// Weights are drawn from r neuron by neuron, so a seeded source always
// yields the same layer.
func NewLayer(fanIn, fanOut int, nonlinear bool, r RandSource) *Layer {
	checkSize("nn.NewLayer", "fan-in", fanIn)
	checkSize("nn.NewLayer", "fan-out", fanOut)

	neurons := make([]*Neuron, fanOut)
	for i := range neurons {
		neurons[i] = NewNeuron(fanIn, nonlinear, r)
	}
	return &Layer{
		neurons: neurons,
		fanIn:   fanIn,
		par:     parallel.Sequential(),
	}
}

// SetParallel controls how Forward spreads neurons over goroutines.
//
// Parallel evaluation only builds new nodes from the shared inputs, so it
// yields the same graph as sequential evaluation.
func (l *Layer) SetParallel(cfg parallel.Config) {
	l.par = cfg
}

// Forward returns one output node per neuron, in neuron order.
//
// Panics if len(x) differs from the fan-in.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	if len(x) != l.fanIn {
		panic(fmt.Sprintf("Layer.Forward: got %d inputs, want %d", len(x), l.fanIn))
	}
	return parallel.Map(len(l.neurons), func(i int) *autodiff.Value {
		return l.neurons[i].Forward(x)
	}, l.par)
}

// FanIn returns the number of inputs.
func (l *Layer) FanIn() int {
	return l.fanIn
}

// FanOut returns the number of neurons.
func (l *Layer) FanOut() int {
	return len(l.neurons)
}

// Neuron returns the neuron at the given index.
//
// Panics if index is out of bounds.
func (l *Layer) Neuron(index int) *Neuron {
	if index < 0 || index >= len(l.neurons) {
		panic("Layer.Neuron: index out of bounds")
	}
	return l.neurons[index]
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad clears the gradients of every neuron.
func (l *Layer) ZeroGrad() {
	zeroGrad(l)
}

func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
