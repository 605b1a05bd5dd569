package op

import (
	"math"

	"github.com/graft-ml/graft/internal/tensor"
)

// Tanh is the element-wise hyperbolic tangent.
//
// Backward:
//
//	grad_x = (1 - tanh(x)²) * grad
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// OutShape is the operand's shape.
func (Tanh) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes tanh(x) element-wise.
func (Tanh) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], math.Tanh)
}

// Backward computes (1 - tanh(x)²) * grad.
func (Tanh) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	x := operands[0]
	out := tensor.New(x.Shape())
	xd, od, gd := x.Data(), out.Data(), grad.Data()
	for i := range xd {
		t := math.Tanh(xd[i])
		od[i] = (1 - t*t) * gd[i]
	}
	return []*tensor.Dense{out}
}

// Arctanh is the element-wise inverse hyperbolic tangent.
//
// Backward:
//
//	grad_x = grad / (1 - x²) for |x| <= 1, NaN outside the domain
type Arctanh struct{}

// Name returns "arctanh".
func (Arctanh) Name() string { return "arctanh" }

// OutShape is the operand's shape.
func (Arctanh) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes arctanh(x) element-wise.
func (Arctanh) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], math.Atanh)
}

// Backward computes grad / (1 - x²) inside the domain, NaN outside.
func (Arctanh) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{maskedQuotient(grad, operands[0], func(x float64) (float64, bool) {
		return 1 - x*x, x >= -1 && x <= 1
	})}
}

// Arcsin is the element-wise inverse sine.
//
// Backward:
//
//	grad_x = grad / sqrt(1 - x²) for |x| <= 1, NaN outside the domain
type Arcsin struct{}

// Name returns "arcsin".
func (Arcsin) Name() string { return "arcsin" }

// OutShape is the operand's shape.
func (Arcsin) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes arcsin(x) element-wise.
func (Arcsin) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], math.Asin)
}

// Backward computes grad / sqrt(1 - x²) inside the domain, NaN outside.
func (Arcsin) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{maskedQuotient(grad, operands[0], func(x float64) (float64, bool) {
		return math.Sqrt(1 - x*x), x >= -1 && x <= 1
	})}
}
