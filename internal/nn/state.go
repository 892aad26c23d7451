package nn

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// State dict errors.
var (
	ErrMissingParameter    = errors.New("missing parameter")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
)

// namedParam pairs a parameter with its state-dict key.
type namedParam struct {
	name  string
	value *autodiff.Value
}

func (n *Neuron) namedParameters(prefix string) []namedParam {
	params := make([]namedParam, 0, len(n.weights)+1)
	for i, w := range n.weights {
		params = append(params, namedParam{prefix + "w" + strconv.Itoa(i), w})
	}
	return append(params, namedParam{prefix + "b", n.bias})
}

func (l *Layer) namedParameters(prefix string) []namedParam {
	var params []namedParam
	for i, n := range l.neurons {
		params = append(params, n.namedParameters(fmt.Sprintf("%s%d.", prefix, i))...)
	}
	return params
}

func (m *MLP) namedParameters(prefix string) []namedParam {
	var params []namedParam
	for i, l := range m.layers {
		params = append(params, l.namedParameters(fmt.Sprintf("%s%d.", prefix, i))...)
	}
	return params
}

// StateDict returns the weights ("w<i>") and bias ("b") keyed by name.
func (n *Neuron) StateDict() map[string]float64 {
	return stateDict(n.namedParameters(""))
}

// LoadStateDict copies values from a state dict produced by StateDict.
func (n *Neuron) LoadStateDict(state map[string]float64) error {
	return loadStateDict(n.namedParameters(""), state)
}

// StateDict returns parameter values prefixed with the neuron index ("0.w1", "2.b").
func (l *Layer) StateDict() map[string]float64 {
	return stateDict(l.namedParameters(""))
}

// LoadStateDict copies values from a state dict produced by StateDict.
func (l *Layer) LoadStateDict(state map[string]float64) error {
	return loadStateDict(l.namedParameters(""), state)
}

// StateDict returns parameter values prefixed with layer and neuron index ("1.0.w2").
func (m *MLP) StateDict() map[string]float64 {
	return stateDict(m.namedParameters(""))
}

// LoadStateDict copies values from a state dict produced by StateDict.
//
// The dict must match the architecture exactly: a missing or unexpected key
// is an error and leaves every parameter untouched.
func (m *MLP) LoadStateDict(state map[string]float64) error {
	return loadStateDict(m.namedParameters(""), state)
}

// ParameterNames returns the state-dict key of each parameter, in Parameters order.
func (m *MLP) ParameterNames() []string {
	params := m.namedParameters("")
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.name
	}
	return names
}

func stateDict(params []namedParam) map[string]float64 {
	state := make(map[string]float64, len(params))
	for _, p := range params {
		state[p.name] = p.value.Data()
	}
	return state
}

func loadStateDict(params []namedParam, state map[string]float64) error {
	known := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := state[p.name]; !ok {
			return fmt.Errorf("load state dict: %w %q", ErrMissingParameter, p.name)
		}
		known[p.name] = struct{}{}
	}

	if len(state) != len(known) {
		var extra []string
		for name := range state {
			if _, ok := known[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		return fmt.Errorf("load state dict: %w %q", ErrUnexpectedParameter, extra[0])
	}

	for _, p := range params {
		p.value.SetData(state[p.name])
	}
	return nil
}
