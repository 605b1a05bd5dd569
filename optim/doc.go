// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training over Graft
// graphs.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Optimizer: the interface both implement
//
// # Basic Usage
//
//	import (
//	    "github.com/graft-ml/graft/nn"
//	    "github.com/graft-ml/graft/optim"
//	)
//
//	model := nn.NewMLP(rng, 2, 16, 1)
//	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss.Forward(bindings)
//	    loss.Backward()
//	    opt.Step()
//	}
//
// Optimizers read each parameter leaf's gradient after a Backward pass and
// write the updated value back, leaving the graph's wiring untouched.
package optim
