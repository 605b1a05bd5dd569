// Package op defines the operator library for the graph engine.
//
// Each operator implements the Operation interface, supplying:
//   - a shape contract, checked when a node is constructed
//   - a forward rule: pure function of operand arrays to a result array
//   - a backward (adjoint) rule: maps the upstream gradient to one gradient
//     contribution per operand, matching each operand's shape exactly
//
// Element-wise operators broadcast NumPy-style; their backward rules sum the
// upstream gradient over any broadcast-introduced axes before handing it to
// a smaller-shaped operand. Division-type backward rules (log, log1p,
// arctanh, arcsin) propagate NaN/Inf instead of raising: inputs outside the
// operator's domain yield NaN gradients.
package op

import "github.com/graft-ml/graft/internal/tensor"

// Operation is a differentiable operator in the graph.
type Operation interface {
	// Name returns a short label for the operator, used for rendering.
	Name() string

	// OutShape resolves the result shape from the operand shapes, returning
	// an error when the operands violate the operator's shape contract.
	OutShape(operands []tensor.Shape) (tensor.Shape, error)

	// Forward computes the result array from the operand arrays.
	Forward(operands []*tensor.Dense) *tensor.Dense

	// Backward maps the upstream gradient (matching the output's shape) to
	// one gradient contribution per operand, each matching that operand's
	// shape. It may read the forward-time operand values and the output.
	Backward(grad *tensor.Dense, operands []*tensor.Dense, output *tensor.Dense) []*tensor.Dense
}
