package op

import "github.com/graft-ml/graft/internal/tensor"

// Tensordot contracts the last Axes dimensions of the left operand against
// the first Axes dimensions of the right operand, pairing the left's axis -1
// with the right's axis 0, -2 with 1, and so on. Axes=1 is the standard
// matrix (or matrix-vector) product; Axes=0 is the outer product.
//
// Backward (with n = Axes):
//
//	grad_a = tensordot(grad, bᵀ, b.ndim - n)
//	grad_b = tensordot(aᵀ, grad, a.ndim - n)
//
// where ᵀ reverses all axes; the adjoint of a contraction is a contraction
// of the upstream gradient with the other operand over the complementary axes.
type Tensordot struct {
	Axes int
}

// Name returns "@".
func (Tensordot) Name() string { return "@" }

// OutShape validates the contraction contract and resolves the result shape.
func (t Tensordot) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return tensor.TensordotShape(operands[0], operands[1], t.Axes)
}

// Forward contracts the operands.
func (t Tensordot) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Tensordot(operands[0], operands[1], t.Axes)
}

// Backward contracts the upstream gradient with each operand's transpose
// over the complementary axis count.
func (t Tensordot) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	a, b := operands[0], operands[1]
	gradA := tensor.Tensordot(grad, tensor.Transpose(b), b.NDim()-t.Axes)
	gradB := tensor.Tensordot(tensor.Transpose(a), grad, a.NDim()-t.Axes)
	return []*tensor.Dense{gradA, gradB}
}
