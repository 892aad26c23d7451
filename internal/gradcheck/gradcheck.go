// Package gradcheck verifies backward-pass gradients against finite differences.
//
// A Func rebuilds its expression from fresh leaves on every call, which lets
// the numerical side probe arbitrary points without touching the graph used
// for the analytic side.
package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// ErrNoInputs is returned when a check is requested at a zero-length point.
var ErrNoInputs = errors.New("gradcheck: no inputs")

// Func builds a scalar expression from its input leaves.
type Func func(xs []*autodiff.Value) *autodiff.Value

// Config controls the finite-difference probe and the comparison.
type Config struct {
	Epsilon   float64 // Central-difference step.
	Tolerance float64 // Absolute or relative tolerance per component.
}

// DefaultConfig returns Epsilon = 1e-3 and Tolerance = 1e-3.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-3,
		Tolerance: 1e-3,
	}
}

// MismatchError reports the input whose gradients disagree the most.
type MismatchError struct {
	Index     int     // Input position.
	Analytic  float64 // Gradient from Backward.
	Numerical float64 // Central-difference estimate.
	MaxAbs    float64 // Largest absolute deviation over all inputs.
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("gradcheck: input %d: analytic %g, numerical %g (max deviation %g)",
		e.Index, e.Analytic, e.Numerical, e.MaxAbs)
}

// leaves wraps each coordinate of at in a new leaf.
func leaves(at []float64) []*autodiff.Value {
	xs := make([]*autodiff.Value, len(at))
	for i, x := range at {
		xs[i] = autodiff.New(x)
	}
	return xs
}

// Analytic returns d f / d x[i] at the point at, computed with Backward.
func Analytic(f Func, at []float64) []float64 {
	xs := leaves(at)
	autodiff.Backward(f(xs))

	grads := make([]float64, len(xs))
	for i, x := range xs {
		grads[i] = x.Grad()
	}
	return grads
}

// Numerical estimates d f / d x[i] at the point at with central differences.
func Numerical(f Func, at []float64, cfg Config) []float64 {
	eval := func(x []float64) float64 {
		return f(leaves(x)).Data()
	}
	return fd.Gradient(nil, eval, at, &fd.Settings{
		Formula: fd.Central,
		Step:    cfg.Epsilon,
	})
}

// Check compares Analytic against Numerical at the point at.
//
// Returns nil when every component agrees within cfg.Tolerance, ErrNoInputs
// for an empty point, and a *MismatchError otherwise.
func Check(f Func, at []float64, cfg Config) error {
	if len(at) == 0 {
		return ErrNoInputs
	}

	analytic := Analytic(f, at)
	numerical := Numerical(f, at, cfg)
	if floats.EqualApprox(analytic, numerical, cfg.Tolerance) {
		return nil
	}

	worst, worstDiff := 0, -1.0
	for i := range analytic {
		diff := math.Abs(analytic[i] - numerical[i])
		if math.IsNaN(diff) {
			worst = i
			break
		}
		if diff > worstDiff {
			worst, worstDiff = i, diff
		}
	}
	return &MismatchError{
		Index:     worst,
		Analytic:  analytic[worst],
		Numerical: numerical[worst],
		MaxAbs:    floats.Distance(analytic, numerical, math.Inf(1)),
	}
}
