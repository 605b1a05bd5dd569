package nn

import (
	"fmt"
	"math/rand"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// Linear implements a fully connected (dense) layer: y = x @ W + b.
//
//   - x: input node with shape [batch, inFeatures]
//   - W: weight leaf with shape [inFeatures, outFeatures], Xavier-initialized
//   - b: bias leaf with shape [outFeatures], zero-initialized, broadcast
//     over the batch dimension
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *graph.Node
	bias        *graph.Node
}

// NewLinear creates a Linear layer with Xavier-initialized weights and zero
// biases, drawing from rng.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      graph.Const(Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, rng)),
		bias:        graph.Const(tensor.Zeros(tensor.Shape{outFeatures})),
	}
}

// Forward wires y = x @ W + b onto the input node.
func (l *Linear) Forward(input *graph.Node) *graph.Node {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn: Linear expects 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear expects input with %d features, got %d", l.inFeatures, shape[1]))
	}
	return input.MatMul(l.weight).Add(l.bias)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*graph.Node {
	return []*graph.Node{l.weight, l.bias}
}

// Weight returns the weight leaf node.
func (l *Linear) Weight() *graph.Node { return l.weight }

// Bias returns the bias leaf node.
func (l *Linear) Bias() *graph.Node { return l.bias }
