package graph

import (
	"errors"
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// Common errors.
var (
	// ErrNotEvaluated reports a Backward call on a node whose data has not
	// been materialized by a prior Forward call.
	ErrNotEvaluated = errors.New("node has not been evaluated: call Forward first")

	// ErrUnboundPlaceholder reports a placeholder missing from the bindings
	// of a strict forward pass. The non-strict Forward never returns it:
	// unbound placeholders evaluate to NaN by design.
	ErrUnboundPlaceholder = errors.New("unbound placeholder")

	// ErrCyclicGraph reports a cycle in a node's dependency graph. Graph
	// wiring is fixed at construction, so a cycle indicates corrupted state;
	// the topology traversal panics with this error wrapped.
	ErrCyclicGraph = errors.New("cycle detected in graph")
)

// ShapeError reports an operator invoked with operand shapes that violate
// its contract, or a binding that does not match a placeholder's declared
// shape. Operator construction panics with a *ShapeError since a mismatched
// expression is a programming error; forward-time binding checks return it.
type ShapeError struct {
	Op     string         // operator or context label
	Shapes []tensor.Shape // offending operand shapes
	Reason string         // contract violated
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if len(e.Shapes) > 0 {
		return fmt.Sprintf("shape mismatch in %q with operands %v: %s", e.Op, e.Shapes, e.Reason)
	}
	return fmt.Sprintf("shape mismatch in %q: %s", e.Op, e.Reason)
}
