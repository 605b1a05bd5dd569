package graph

import (
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// Backward propagates gradients from n to every node it depends on,
// walking the cached dependency order root-to-leaves.
//
// The pass resets every reachable node's gradient, seeds n's gradient with
// ones of its shape (the conventional seed; the root is usually a
// scalar-like reduction), then applies each operator's adjoint rule to its
// parents' forward-time data, summing the per-path contributions into each
// parent's gradient. A leaf used by several downstream paths therefore ends
// up holding the total gradient of n with respect to that leaf.
//
// Requires a prior Forward call on n: if any reachable node has no data,
// Backward fails with ErrNotEvaluated.
func (n *Node) Backward() error {
	if n.data == nil {
		return fmt.Errorf("graph: %w", ErrNotEvaluated)
	}

	topo := n.Topology()

	for _, v := range topo {
		if v.data == nil {
			return fmt.Errorf("graph: %w: node %s", ErrNotEvaluated, v.label())
		}
		if v == n {
			v.grad = tensor.Ones(v.shape)
		} else {
			v.grad = tensor.Zeros(v.shape)
		}
	}

	// Chain rule, one node at a time, consumers before producers.
	for i := len(topo) - 1; i >= 0; i-- {
		v := topo[i]
		if v.op == nil {
			continue
		}
		operands := make([]*tensor.Dense, len(v.parents))
		for j, p := range v.parents {
			operands[j] = p.data
		}
		contribs := v.op.Backward(v.grad, operands, v.data)
		for j, p := range v.parents {
			p.grad.AddAssign(contribs[j])
		}
	}
	return nil
}
