// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares backward-pass gradients with finite differences.
package gradcheck

import (
	"github.com/born-ml/micrograd/internal/gradcheck"
)

// Func builds a scalar expression from its input leaves.
type Func = gradcheck.Func

// Config controls the probe step and comparison tolerance.
type Config = gradcheck.Config

// MismatchError reports the input whose gradients disagree the most.
type MismatchError = gradcheck.MismatchError

// Case is a named expression checked at a fixed point.
type Case = gradcheck.Case

// Result is the outcome of checking one Case.
type Result = gradcheck.Result

// ErrNoInputs is returned for a zero-length point.
var ErrNoInputs = gradcheck.ErrNoInputs

// DefaultConfig returns Epsilon = 1e-3 and Tolerance = 1e-3.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Analytic returns the gradient of f at the point at, computed by Backward.
func Analytic(f Func, at []float64) []float64 {
	return gradcheck.Analytic(f, at)
}

// Numerical estimates the gradient of f at the point at with central differences.
func Numerical(f Func, at []float64, cfg Config) []float64 {
	return gradcheck.Numerical(f, at, cfg)
}

// Check returns nil if Analytic and Numerical agree within cfg.Tolerance.
func Check(f Func, at []float64, cfg Config) error {
	return gradcheck.Check(f, at, cfg)
}

// Cases returns the built-in suite covering every primitive.
func Cases() []Case {
	return gradcheck.Cases()
}

// Run checks every case with cfg.
func Run(cases []Case, cfg Config) []Result {
	return gradcheck.Run(cases, cfg)
}
