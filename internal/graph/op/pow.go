package op

import (
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// Pow raises its operand to a fixed scalar exponent: output = x ** p.
// Only scalar exponents are supported; an exponent that is itself a tensor
// would need its own node.
//
// Backward:
//
//	grad_x = p * x**(p-1) * grad
type Pow struct {
	Exponent float64
}

// Name returns e.g. "**2".
func (p Pow) Name() string { return fmt.Sprintf("**%g", p.Exponent) }

// OutShape is the operand's shape.
func (Pow) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes x ** p element-wise.
func (p Pow) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Pow(operands[0], p.Exponent)
}

// Backward computes p * x**(p-1) * grad.
func (p Pow) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	local := tensor.Scale(tensor.Pow(operands[0], p.Exponent-1), p.Exponent)
	return []*tensor.Dense{tensor.Mul(local, grad)}
}
