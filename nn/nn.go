// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small multi-layer perceptron built on scalar autodiff.
//
// Example:
//
//	r := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, r)
//
//	x := []*autodiff.Value{autodiff.New(2), autodiff.New(3), autodiff.New(-1)}
//	out := model.Forward(x)[0]
//	autodiff.Backward(out)
//
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Grad())
//	}
//	model.ZeroGrad()
package nn

import (
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is the common interface of Neuron, Layer and MLP.
type Module = nn.Module

// RandSource supplies uniform floats in [0, 1) for weight initialization.
type RandSource = nn.RandSource

// Neuron computes act(sum(w[i] * x[i]) + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with fanIn random weights and a zero bias.
func NewNeuron(fanIn int, nonlinear bool, r RandSource) *Neuron {
	return nn.NewNeuron(fanIn, nonlinear, r)
}

// Layer is a row of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates fanOut neurons with fanIn inputs each.
//
// nonlinear selects ReLU outputs. Pass false for a linear layer, which is
// what NewMLP builds for its last layer.
func NewLayer(fanIn, fanOut int, nonlinear bool, r RandSource) *Layer {
	return nn.NewLayer(fanIn, fanOut, nonlinear, r)
}

// MLP chains layers from input to output.
type MLP = nn.MLP

// NewMLP creates fanIn -> sizes[0] -> ... -> sizes[len-1] layers.
// Hidden layers use ReLU, the last layer is linear.
func NewMLP(fanIn int, sizes []int, r RandSource) *MLP {
	return nn.NewMLP(fanIn, sizes, r)
}

// Stats summarizes a module's parameters and gradients.
type Stats = nn.Stats

// ParameterStats computes Stats over m.Parameters().
func ParameterStats(m Module) Stats {
	return nn.ParameterStats(m)
}

// State dict errors.
var (
	ErrMissingParameter    = nn.ErrMissingParameter
	ErrUnexpectedParameter = nn.ErrUnexpectedParameter
)
