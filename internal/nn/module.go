// Package nn implements a small multi-layer perceptron on top of scalar autodiff.
//
// This package provides:
//   - Module interface: Parameters and ZeroGrad for every component
//   - Neuron: weighted sum plus bias, optionally followed by ReLU
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: layers chained input to output
//
// Modules add no graph semantics of their own. Forward composes autodiff
// operators, so a backward pass from any output reaches every parameter.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all network components.
type Module interface {
	// Parameters returns the trainable leaves of this module.
	//
	// Order: layer-major, then neuron-major, weights before bias.
	Parameters() []*autodiff.Value

	// ZeroGrad sets the gradient of every parameter to 0.
	//
	// Intermediate nodes built by Forward are not reached.
	ZeroGrad()
}

// zeroGrad is shared by the Module implementations.
func zeroGrad(m Module) {
	autodiff.ZeroGrad(m.Parameters())
}
