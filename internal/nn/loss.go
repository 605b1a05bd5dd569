package nn

import "github.com/graft-ml/graft/internal/graph"

// MSE wires the mean squared error between predictions and targets:
// mean((pred - target)²) over every element, yielding a scalar node.
// target may be a *graph.Node or any raw value graph.Const accepts.
func MSE(pred *graph.Node, target any) *graph.Node {
	return pred.Sub(target).Pow(2).Mean()
}
