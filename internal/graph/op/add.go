package op

import "github.com/graft-ml/graft/internal/tensor"

// Add is broadcast element-wise addition: output = a + b.
//
// Backward:
//
//	grad_a = reduce(grad, a.shape)
//	grad_b = reduce(grad, b.shape)
//
// where reduce sums the upstream gradient over any axes that broadcasting
// introduced, so each contribution matches its operand's shape.
type Add struct{}

// Name returns "+".
func (Add) Name() string { return "+" }

// OutShape resolves the broadcast result shape of the two operands.
func (Add) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return tensor.BroadcastShapes(operands[0], operands[1])
}

// Forward computes a + b.
func (Add) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Add(operands[0], operands[1])
}

// Backward routes the upstream gradient to both operands, undoing broadcasting.
func (Add) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{
		tensor.ReduceTo(grad, operands[0].Shape()),
		tensor.ReduceTo(grad, operands[1].Shape()),
	}
}
