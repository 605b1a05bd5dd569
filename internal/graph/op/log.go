package op

import (
	"math"

	"github.com/graft-ml/graft/internal/tensor"
)

// Log is the element-wise natural logarithm.
//
// Backward:
//
//	grad_x = grad / x for x >= 0, NaN outside the domain
//
// The domain mask keeps the lazy-NaN policy: out-of-domain inputs surface as
// NaN gradients rather than errors.
type Log struct{}

// Name returns "log".
func (Log) Name() string { return "log" }

// OutShape is the operand's shape.
func (Log) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes log(x) element-wise.
func (Log) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], math.Log)
}

// Backward computes grad / x inside the domain, NaN outside.
func (Log) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{maskedQuotient(grad, operands[0], func(x float64) (float64, bool) {
		return x, x >= 0
	})}
}

// Log1p is the element-wise log(1 + x).
//
// Backward:
//
//	grad_x = grad / (1 + x) for x >= -1, NaN outside the domain
type Log1p struct{}

// Name returns "log1p".
func (Log1p) Name() string { return "log1p" }

// OutShape is the operand's shape.
func (Log1p) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	return operands[0].Clone(), nil
}

// Forward computes log(1 + x) element-wise.
func (Log1p) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Map(operands[0], math.Log1p)
}

// Backward computes grad / (1 + x) inside the domain, NaN outside.
func (Log1p) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{maskedQuotient(grad, operands[0], func(x float64) (float64, bool) {
		return 1 + x, x >= -1
	})}
}

// maskedQuotient divides grad by denom(x) where x is inside the operator's
// domain and yields NaN elsewhere, matching the lazy-NaN policy of the
// division-type backward rules.
func maskedQuotient(grad, x *tensor.Dense, denom func(float64) (float64, bool)) *tensor.Dense {
	out := tensor.New(x.Shape())
	xd, od, gd := x.Data(), out.Data(), grad.Data()
	for i := range xd {
		if d, ok := denom(xd[i]); ok {
			od[i] = gd[i] / d
		} else {
			od[i] = math.NaN()
		}
	}
	return out
}
