package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// RandSource supplies uniform floats in [0, 1).
//
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it, which lets tests
// pass a seeded generator.
type RandSource interface {
	Float64() float64
}

// Uniform draws a value in [-1, 1) from r.
func Uniform(r RandSource) float64 {
	return r.Float64()*2 - 1
}

// uniformLeaves returns n parameter leaves initialized with Uniform.
func uniformLeaves(n int, r RandSource) []*autodiff.Value {
	if r == nil {
		panic("nn: nil RandSource")
	}
	out := make([]*autodiff.Value, n)
	for i := range out {
		out[i] = autodiff.New(Uniform(r))
	}
	return out
}

// checkSize panics on a negative dimension.
func checkSize(where, what string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("%s: negative %s %d", where, what, n))
	}
}
