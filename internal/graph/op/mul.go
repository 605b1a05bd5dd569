package op

import "github.com/graft-ml/graft/internal/tensor"

// Mul is broadcast element-wise multiplication: output = a * b.
//
// Backward:
//
//	grad_a = reduce(grad * b, a.shape)
//	grad_b = reduce(grad * a, b.shape)
type Mul struct{}

// Name returns "*".
func (Mul) Name() string { return "*" }

// OutShape resolves the broadcast result shape of the two operands.
func (Mul) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return tensor.BroadcastShapes(operands[0], operands[1])
}

// Forward computes a * b.
func (Mul) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Mul(operands[0], operands[1])
}

// Backward scales the upstream gradient by the other operand's forward-time
// value, then undoes broadcasting.
func (Mul) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	a, b := operands[0], operands[1]
	return []*tensor.Dense{
		tensor.ReduceTo(tensor.Mul(grad, b), a.Shape()),
		tensor.ReduceTo(tensor.Mul(grad, a), b.Shape()),
	}
}
