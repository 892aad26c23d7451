package gradcheck

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Case is a named expression checked at a fixed point.
type Case struct {
	Name string
	F    Func
	At   []float64
}

// Result is the outcome of checking one Case.
type Result struct {
	Name string
	Err  error
}

// Cases returns the built-in suite covering every primitive.
//
// ReLU points stay away from zero so the central difference does not
// straddle the kink.
func Cases() []Case {
	return []Case{
		{
			Name: "add",
			F:    func(x []*autodiff.Value) *autodiff.Value { return autodiff.Add(x[0], x[1]) },
			At:   []float64{1.5, -2},
		},
		{
			Name: "mul",
			F:    func(x []*autodiff.Value) *autodiff.Value { return autodiff.Mul(x[0], x[1]) },
			At:   []float64{-3, 0.75},
		},
		{
			Name: "pow_integer",
			F:    func(x []*autodiff.Value) *autodiff.Value { return x[0].Pow(3) },
			At:   []float64{-1.2},
		},
		{
			Name: "pow_fractional",
			F:    func(x []*autodiff.Value) *autodiff.Value { return x[0].Pow(2.5) },
			At:   []float64{1.7},
		},
		{
			Name: "relu_positive",
			F:    func(x []*autodiff.Value) *autodiff.Value { return x[0].Mul(x[1]).ReLU() },
			At:   []float64{2, 0.5},
		},
		{
			Name: "relu_negative",
			F:    func(x []*autodiff.Value) *autodiff.Value { return x[0].Mul(x[1]).ReLU() },
			At:   []float64{-2, 0.5},
		},
		{
			Name: "shared_operand",
			F: func(x []*autodiff.Value) *autodiff.Value {
				return autodiff.Add(autodiff.Mul(x[0], x[1]), autodiff.Mul(x[0], x[2]))
			},
			At: []float64{0.5, -1, 3},
		},
		{
			Name: "sub_div",
			F: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].Sub(x[1]).Div(x[1].Pow(2).AddScalar(1))
			},
			At: []float64{2, -0.5},
		},
		{
			Name: "neuron",
			F: func(x []*autodiff.Value) *autodiff.Value {
				w := []*autodiff.Value{autodiff.Constant(0.3), autodiff.Constant(-0.8), autodiff.Constant(1.1)}
				return autodiff.Dot(w, x).AddScalar(0.2).ReLU()
			},
			At: []float64{1, -0.5, 0.25},
		},
		{
			Name: "reference",
			F: func(x []*autodiff.Value) *autodiff.Value {
				a, b := x[0], x[1]
				return autodiff.Add(autodiff.Add(a, b), autodiff.Mul(a, b))
			},
			At: []float64{-4, 2},
		},
	}
}

// Run checks every case with cfg.
func Run(cases []Case, cfg Config) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = Result{Name: c.Name, Err: Check(c.F, c.At, cfg)}
	}
	return results
}
