// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel configures concurrent neuron evaluation.
//
// Example:
//
//	model := nn.NewMLP(8, []int{64, 64, 1}, r)
//	model.SetParallel(parallel.DefaultConfig())
package parallel

import (
	"github.com/born-ml/micrograd/internal/parallel"
)

// Config controls parallel execution behavior.
type Config = parallel.Config

// DefaultConfig returns a config sized to the CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a config that always runs inline.
func Sequential() Config {
	return parallel.Sequential()
}
