package op

import "github.com/graft-ml/graft/internal/tensor"

// Sum reduces the operand over the given axes, removing them from the shape.
// An empty Axes reduces over every axis, yielding a scalar. Negative axes
// count from the end.
//
// Backward:
//
//	grad_x = broadcast(grad) over the reduced axes, no scaling
//
// Each input element contributed with weight 1, so the upstream gradient is
// replicated back over the axes the forward pass summed away. Mean is built
// on top of Sum by the graph builder as sum * (1/count), which scales this
// rule by the reduced element count.
type Sum struct {
	Axes []int
}

// Name returns "sum".
func (Sum) Name() string { return "sum" }

// OutShape removes the reduced axes from the operand shape.
func (s Sum) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	norm, err := operands[0].NormalizeAxes(s.Axes)
	if err != nil {
		return nil, err
	}
	return tensor.ReducedShape(operands[0], norm), nil
}

// Forward sums over the reduced axes.
func (s Sum) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Sum(operands[0], s.Axes...)
}

// Backward replicates the upstream gradient back over the reduced axes.
func (s Sum) Backward(grad *tensor.Dense, operands []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	src := operands[0].Shape()
	norm, err := src.NormalizeAxes(s.Axes)
	if err != nil {
		// OutShape validated the axes at construction time.
		panic("op: " + err.Error())
	}
	return []*tensor.Dense{tensor.Unreduce(grad, src, norm)}
}
