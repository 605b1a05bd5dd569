package op

import (
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// Transpose permutes the operand's axes. Axes must hold the full resolved
// permutation (the graph builder expands the default full reversal before
// constructing the op).
//
// Backward:
//
//	grad_x = transpose(grad, inverse(Axes))
type Transpose struct {
	Axes []int
}

// Name returns "T".
func (Transpose) Name() string { return "T" }

// OutShape permutes the operand shape, validating the permutation.
func (t Transpose) OutShape(operands []tensor.Shape) (tensor.Shape, error) {
	in := operands[0]
	if len(t.Axes) != len(in) {
		return nil, fmt.Errorf("transpose: axes %v do not match shape %v", t.Axes, in)
	}
	seen := make([]bool, len(in))
	out := make(tensor.Shape, len(in))
	for i, ax := range t.Axes {
		if ax < 0 || ax >= len(in) || seen[ax] {
			return nil, fmt.Errorf("transpose: axes %v are not a permutation of %d dimensions", t.Axes, len(in))
		}
		seen[ax] = true
		out[i] = in[ax]
	}
	return out, nil
}

// Forward permutes the operand's axes.
func (t Transpose) Forward(operands []*tensor.Dense) *tensor.Dense {
	return tensor.Transpose(operands[0], t.Axes...)
}

// Backward applies the inverse permutation to the upstream gradient.
func (t Transpose) Backward(grad *tensor.Dense, _ []*tensor.Dense, _ *tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Transpose(grad, tensor.InversePermutation(t.Axes)...)}
}
