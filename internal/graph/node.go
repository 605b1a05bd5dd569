// Package graph implements a reverse-mode automatic-differentiation engine
// over tensor-valued nodes forming a dynamically constructed DAG.
//
// Expressions are built lazily: every operator application allocates a new
// derived Node wired to its operands without computing anything. Calling
// Forward on a terminal node walks its dependency graph leaves-to-root,
// materializing data and resolving named placeholders from caller-supplied
// bindings; Backward walks the same order root-to-leaves, accumulating
// vector-Jacobian products into each node's gradient.
//
// The traversal order is computed once per terminal node and memoized; the
// engine assumes a graph's wiring never changes after construction, which
// the API enforces by keeping all wiring in unexported fields.
//
// Usage:
//
//	x, _ := graph.Placeholder(tensor.Shape{4, 2}, "x")
//	w := graph.Const(weights)
//	loss := x.MatMul(w).ReLU().Sum()
//
//	if err := loss.Forward(graph.Bindings{"x": batch}); err != nil { ... }
//	if err := loss.Backward(); err != nil { ... }
//	grad := w.Grad()
//
// Nothing here is safe for concurrent use: Forward and Backward mutate
// shared node state in place.
package graph

import (
	"fmt"

	"github.com/graft-ml/graft/internal/graph/op"
	"github.com/graft-ml/graft/internal/tensor"
)

// Node is a tensor-valued vertex in the computation DAG.
//
// A Node is either a leaf (a constant with fixed data, or a placeholder
// bound per forward call) or the output of an operator applied to parent
// nodes. Parents may be shared by many consumers, making the structure a
// DAG; nodes hold only parent references, never child back-references, so
// an unreferenced subgraph is reclaimed by the garbage collector.
type Node struct {
	data        *tensor.Dense
	grad        *tensor.Dense
	shape       tensor.Shape
	op          op.Operation // nil for leaves
	parents     []*Node      // empty for leaves
	name        string       // placeholder binding key, empty otherwise
	placeholder bool
	topo        []*Node // memoized traversal order for this terminal
}

// Const creates a constant leaf from v, which may be a *tensor.Dense, a
// float64/float32/int scalar, a []float64 vector, or a [][]float64 matrix.
// Panics on any other type: wrapping raw values is an explicit conversion
// with a fixed set of accepted forms, not open-ended coercion.
func Const(v any) *Node {
	d, err := toDense(v)
	if err != nil {
		panic("graph: " + err.Error())
	}
	return &Node{data: d, shape: d.Shape().Clone()}
}

// Placeholder creates a leaf whose value is supplied per forward call under
// the given name. Until bound it evaluates to NaN of the declared shape.
func Placeholder(shape tensor.Shape, name string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("graph: placeholder requires a name")
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("graph: placeholder %q: %w", name, err)
	}
	return &Node{
		shape:       shape.Clone(),
		name:        name,
		placeholder: true,
	}, nil
}

// toDense normalizes the raw values operators accept into a Dense array.
func toDense(v any) (*tensor.Dense, error) {
	switch x := v.(type) {
	case *tensor.Dense:
		return x, nil
	case float64:
		return tensor.Scalar(x), nil
	case float32:
		return tensor.Scalar(float64(x)), nil
	case int:
		return tensor.Scalar(float64(x)), nil
	case []float64:
		return tensor.FromSlice(x, tensor.Shape{len(x)})
	case [][]float64:
		return tensor.FromRows(x)
	default:
		return nil, fmt.Errorf("cannot wrap %T as a constant node", v)
	}
}

// asNode normalizes an operand into a Node, auto-wrapping raw values as
// constant leaves.
func asNode(v any) *Node {
	if n, ok := v.(*Node); ok {
		return n
	}
	return Const(v)
}

// Data returns the node's current value, or nil before it is computed or
// bound. Placeholders and derived nodes are refreshed by every Forward call.
func (n *Node) Data() *tensor.Dense { return n.data }

// Grad returns the node's accumulated gradient from the most recent
// Backward call, or nil if none has run.
func (n *Node) Grad() *tensor.Dense { return n.grad }

// Shape returns the node's declared shape, fixed at construction.
func (n *Node) Shape() tensor.Shape { return n.shape }

// Name returns the placeholder binding name, empty for other nodes.
func (n *Node) Name() string { return n.name }

// OpName returns the label of the operator that produced this node, empty
// for leaves.
func (n *Node) OpName() string {
	if n.op == nil {
		return ""
	}
	return n.op.Name()
}

// IsPlaceholder reports whether this leaf is bound per forward call.
func (n *Node) IsPlaceholder() bool { return n.placeholder }

// Parents returns the nodes this node depends on, in operand order.
// The returned slice is a copy; graph wiring cannot be modified.
func (n *Node) Parents() []*Node {
	out := make([]*Node, len(n.parents))
	copy(out, n.parents)
	return out
}

// SetData replaces a leaf node's value, preserving the declared shape.
// This is how parameter updates land between passes: the graph's wiring and
// cached topology stay untouched, only the leaf's data is refreshed.
// Returns an error for derived nodes or mismatched shapes.
func (n *Node) SetData(d *tensor.Dense) error {
	if n.op != nil {
		return fmt.Errorf("graph: cannot set data on a derived node (%s)", n.label())
	}
	if !d.Shape().Equal(n.shape) {
		return &ShapeError{
			Op:     "SetData",
			Shapes: []tensor.Shape{d.Shape()},
			Reason: fmt.Sprintf("node %s declares shape %v", n.label(), n.shape),
		}
	}
	n.data = d.Clone()
	return nil
}

// label returns a short identifier for error messages.
func (n *Node) label() string {
	switch {
	case n.name != "":
		return fmt.Sprintf("%q", n.name)
	case n.op != nil:
		return fmt.Sprintf("op %q", n.op.Name())
	default:
		return "const"
	}
}

// String renders the node's value and gradient, for debugging.
func (n *Node) String() string {
	return fmt.Sprintf("Node(data=%v, grad=%v)", n.data, n.grad)
}
