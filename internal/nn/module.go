// Package nn implements neural network building blocks on top of the graph
// engine.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Linear: fully connected layer
//   - ReLU: activation module
//   - Sequential: container for stacking layers
//   - MSE: mean squared error loss
//
// Every module is built purely from graph operators: it consumes the engine
// only through node construction, Forward, Backward, and the read accessors.
// Parameters are constant leaf nodes; optimizers read their gradients after
// a backward pass and write refreshed values with SetData.
package nn

import "github.com/graft-ml/graft/internal/graph"

// Module is the base interface for all neural network components.
//
// Modules compose to build architectures:
//
//	model := nn.NewMLP(rng, 2, 8, 1)
//	out := model.Forward(x)
type Module interface {
	// Forward wires the module's computation onto the input node and
	// returns the output node. Nothing is evaluated until the terminal
	// node's Forward pass runs.
	Forward(input *graph.Node) *graph.Node

	// Parameters returns the module's trainable leaf nodes, including any
	// nested module parameters. Empty for stateless modules.
	Parameters() []*graph.Node
}
