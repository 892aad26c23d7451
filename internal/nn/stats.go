package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Stats summarizes the parameters of a module.
type Stats struct {
	Count    int     // Number of parameters.
	DataNorm float64 // L2 norm of parameter values.
	GradNorm float64 // L2 norm of parameter gradients.
	GradSum  float64 // Sum of parameter gradients.
}

// ParameterStats computes Stats over m.Parameters().
func ParameterStats(m Module) Stats {
	params := m.Parameters()
	data := make([]float64, len(params))
	grads := make([]float64, len(params))
	for i, p := range params {
		data[i] = p.Data()
		grads[i] = p.Grad()
	}

	return Stats{
		Count:    len(params),
		DataNorm: floats.Norm(data, 2),
		GradNorm: floats.Norm(grads, 2),
		GradSum:  floats.Sum(grads),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("params=%d |data|=%.6g |grad|=%.6g sum(grad)=%.6g",
		s.Count, s.DataNorm, s.GradNorm, s.GradSum)
}
