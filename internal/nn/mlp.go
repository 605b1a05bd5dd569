package nn

import (
	"math/rand"

	"github.com/graft-ml/graft/internal/graph"
)

// ReLU is a stateless activation module computing max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward wires the activation onto the input node.
func (*ReLU) Forward(input *graph.Node) *graph.Node { return input.ReLU() }

// Parameters returns an empty slice; ReLU has no trainable state.
func (*ReLU) Parameters() []*graph.Node { return nil }

// Tanh is a stateless activation module computing tanh(x).
type Tanh struct{}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward wires the activation onto the input node.
func (*Tanh) Forward(input *graph.Node) *graph.Node { return input.Tanh() }

// Parameters returns an empty slice; Tanh has no trainable state.
func (*Tanh) Parameters() []*graph.Node { return nil }

// Sequential chains modules, feeding each output into the next module.
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container over the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward wires each module in order onto the running node.
func (s *Sequential) Forward(input *graph.Node) *graph.Node {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every contained module.
func (s *Sequential) Parameters() []*graph.Node {
	var params []*graph.Node
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// NewMLP builds a multi-layer perceptron from layer sizes, with ReLU between
// hidden layers and a linear final layer.
//
//	model := nn.NewMLP(rng, 2, 16, 16, 1) // 2 inputs, two hidden layers, 1 output
func NewMLP(rng *rand.Rand, sizes ...int) *Sequential {
	if len(sizes) < 2 {
		panic("nn: MLP needs at least an input and an output size")
	}
	var modules []Module
	for i := 0; i < len(sizes)-1; i++ {
		modules = append(modules, NewLinear(sizes[i], sizes[i+1], rng))
		if i < len(sizes)-2 {
			modules = append(modules, NewReLU())
		}
	}
	return NewSequential(modules...)
}
