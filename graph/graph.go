// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for Graft's reverse-mode autodiff
// engine.
//
// # Overview
//
// Expressions over tensor values are built lazily as a DAG of Nodes; a
// Forward call evaluates the graph leaves-to-root and Backward accumulates
// gradients root-to-leaves. See the internal engine documentation on Node
// for the full evaluation contract.
//
// # Basic Usage
//
//	import (
//	    "github.com/graft-ml/graft/graph"
//	    "github.com/graft-ml/graft/tensor"
//	)
//
//	func main() {
//	    x, _ := graph.Placeholder(tensor.Shape{4, 2}, "x")
//	    w := graph.Const([][]float64{{1}, {-1}})
//	    loss := x.MatMul(w).ReLU().Sum()
//
//	    batch, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
//	    if err := loss.Forward(graph.Bindings{"x": batch}); err != nil {
//	        ...
//	    }
//	    if err := loss.Backward(); err != nil {
//	        ...
//	    }
//	    grad := w.Grad()
//	}
package graph

import (
	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// Node is a tensor-valued vertex in the computation DAG. Operator methods on
// Node (Add, Mul, MatMul, ReLU, Sum, ...) construct derived nodes lazily.
type Node = graph.Node

// Bindings maps placeholder names to the arrays supplied for one forward
// pass.
type Bindings = graph.Bindings

// ShapeError reports incompatible operand shapes, raised as a panic at
// construction time and returned as an error when a forward-pass binding
// does not match its placeholder's declared shape.
type ShapeError = graph.ShapeError

// Sentinel errors returned by the evaluation passes.
var (
	// ErrNotEvaluated reports a Backward call on a graph with no prior
	// Forward pass.
	ErrNotEvaluated = graph.ErrNotEvaluated

	// ErrUnboundPlaceholder reports a placeholder missing from the bindings
	// of a ForwardStrict call.
	ErrUnboundPlaceholder = graph.ErrUnboundPlaceholder

	// ErrCyclicGraph reports a cycle in the node wiring; it is wrapped in
	// the panic raised by a traversal that encounters one.
	ErrCyclicGraph = graph.ErrCyclicGraph
)

// Const creates a constant leaf from v, which may be a *tensor.Dense, a
// float64/float32/int scalar, a []float64 vector, or a [][]float64 matrix.
func Const(v any) *Node { return graph.Const(v) }

// Placeholder creates a leaf whose value is supplied per forward call under
// the given name.
func Placeholder(shape tensor.Shape, name string) (*Node, error) {
	return graph.Placeholder(shape, name)
}
