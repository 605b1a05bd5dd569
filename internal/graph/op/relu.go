package op

import "github.com/graft-ml/graft/internal/tensor"

// ReLU is the rectified linear unit: output = max(0, x).
//
// Backward:
//
//	grad_x = grad where x > 0, else 0
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// OutShape is the operand's shape.
func (ReLU) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes max(0, x) element-wise.
func (ReLU) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Backward passes the upstream gradient through where the input was positive.
func (ReLU) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	x := operands[0]
	out := tensor.New(x.Shape())
	xd, od, gd := x.Data(), out.Data(), grad.Data()
	for i := range xd {
		if xd[i] > 0 {
			od[i] = gd[i]
		}
	}
	return []*tensor.Dense{out}
}
