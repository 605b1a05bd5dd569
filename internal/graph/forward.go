package graph

import (
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// Bindings maps placeholder names to the arrays supplied for one forward
// pass.
type Bindings map[string]*tensor.Dense

// Forward evaluates the graph rooted at n, walking the cached dependency
// order leaves-to-root and refreshing every node's data: placeholders take
// their bound array, constant leaves keep their value, and derived nodes
// recompute from their parents' current data. It may be called repeatedly
// with different bindings; data is always recomputed from scratch, only the
// traversal order is cached.
//
// A placeholder missing from bindings is not an error: it evaluates to an
// array of NaN of its declared shape, so everything downstream is observably
// invalid rather than crashing. Callers detect missing inputs by checking
// the result for NaN; use ForwardStrict to fail fast instead.
//
// A binding whose shape differs from the placeholder's declared shape
// returns a *ShapeError; data is then in an unspecified, possibly partially
// updated state and the caller must not proceed to Backward.
func (n *Node) Forward(bindings Bindings) error {
	return n.forward(bindings, false)
}

// ForwardStrict is Forward with the silent-NaN policy disabled: a
// placeholder missing from bindings fails with ErrUnboundPlaceholder.
func (n *Node) ForwardStrict(bindings Bindings) error {
	return n.forward(bindings, true)
}

func (n *Node) forward(bindings Bindings, strict bool) error {
	for _, v := range n.Topology() {
		switch {
		case v.placeholder:
			bound, ok := bindings[v.name]
			if !ok {
				if strict {
					return fmt.Errorf("graph: %w: %q", ErrUnboundPlaceholder, v.name)
				}
				v.data = tensor.NaNs(v.shape)
				continue
			}
			if !bound.Shape().Equal(v.shape) {
				return &ShapeError{
					Op:     "bind",
					Shapes: []tensor.Shape{bound.Shape()},
					Reason: fmt.Sprintf("placeholder %q declares shape %v", v.name, v.shape),
				}
			}
			v.data = bound.Clone()

		case v.op == nil:
			// Constant leaf: data was fixed at construction.

		default:
			operands := make([]*tensor.Dense, len(v.parents))
			for i, p := range v.parents {
				operands[i] = p.data
			}
			v.data = v.op.Forward(operands)
		}
	}
	return nil
}
