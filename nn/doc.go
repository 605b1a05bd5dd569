// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over Graft graphs.
//
// # Overview
//
// This package contains:
//   - Module: the interface layers and containers implement
//   - Linear: a fully connected layer with Xavier-initialized weights
//   - ReLU, Tanh: stateless activations
//   - Sequential and NewMLP: module containers
//   - MSE: mean squared error loss
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/graft-ml/graft/graph"
//	    "github.com/graft-ml/graft/nn"
//	    "github.com/graft-ml/graft/optim"
//	    "github.com/graft-ml/graft/tensor"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model := nn.NewMLP(rng, 2, 16, 16, 1)
//
//	    x, _ := graph.Placeholder(tensor.Shape{4, 2}, "x")
//	    loss := nn.MSE(model.Forward(x), targets)
//
//	    opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	    for epoch := 0; epoch < epochs; epoch++ {
//	        loss.Forward(graph.Bindings{"x": batch})
//	        loss.Backward()
//	        opt.Step()
//	    }
//	}
//
// Modules build their expression once; subsequent training steps rebind
// placeholders and refresh parameter leaves without rebuilding the graph.
package nn
