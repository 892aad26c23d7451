package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(sum(w[i] * x[i]) + b).
//
// act is ReLU when the neuron is nonlinear and the identity otherwise.
type Neuron struct {
	weights   []*autodiff.Value
	bias      *autodiff.Value
	nonlinear bool
}

// NewNeuron creates a neuron with fanIn weights drawn from r in [-1, 1)
// and a zero bias.
func NewNeuron(fanIn int, nonlinear bool, r RandSource) *Neuron {
	checkSize("nn.NewNeuron", "fan-in", fanIn)
	return &Neuron{
		weights:   uniformLeaves(fanIn, r),
		bias:      autodiff.New(0),
		nonlinear: nonlinear,
	}
}

// Forward builds the neuron's output node for inputs x.
//
// Panics if len(x) differs from the fan-in.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: got %d inputs, want %d", len(x), len(n.weights)))
	}
	act := autodiff.Add(autodiff.Dot(n.weights, x), n.bias)
	if n.nonlinear {
		return autodiff.ReLU(act)
	}
	return act
}

// FanIn returns the number of inputs.
func (n *Neuron) FanIn() int {
	return len(n.weights)
}

// Nonlinear reports whether the output goes through ReLU.
func (n *Neuron) Nonlinear() bool {
	return n.nonlinear
}

// Weights returns the weight leaves in input order.
func (n *Neuron) Weights() []*autodiff.Value {
	out := make([]*autodiff.Value, len(n.weights))
	copy(out, n.weights)
	return out
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad clears the gradients of the weights and bias.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n)
}

func (n *Neuron) String() string {
	if n.nonlinear {
		return fmt.Sprintf("ReLUNeuron(%d)", len(n.weights))
	}
	return fmt.Sprintf("LinearNeuron(%d)", len(n.weights))
}
