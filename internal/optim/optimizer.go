// Package optim implements optimization algorithms over graph leaf nodes.
//
// Optimizers read each parameter's gradient after a Backward pass and write
// the updated value back with SetData, leaving the graph's wiring and cached
// topology untouched.
//
// Example usage:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    if err := loss.Forward(bindings); err != nil { ... }
//	    if err := loss.Backward(); err != nil { ... }
//	    if err := opt.Step(); err != nil { ... }
//	}
package optim

import (
	"fmt"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter, reading the
	// gradients left by the most recent Backward pass. Fails when a
	// parameter has no gradient.
	Step() error

	// LR returns the current learning rate, for monitoring and scheduling.
	LR() float64
}

// paramGrad fetches a parameter's gradient, failing when no backward pass
// has populated it.
func paramGrad(p *graph.Node) (*tensor.Dense, error) {
	g := p.Grad()
	if g == nil {
		return nil, fmt.Errorf("optim: parameter %s has no gradient (run Backward first)", p)
	}
	return g, nil
}
