// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/nn"
	"github.com/graft-ml/graft/internal/tensor"
)

// Module is the interface implemented by every layer and container.
type Module = nn.Module

// Linear is a fully connected layer computing y = x @ W + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier-initialized weights and zero
// biases, drawing from rng.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// ReLU is a stateless activation module computing max(0, x).
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return nn.NewReLU() }

// Tanh is a stateless activation module computing tanh(x).
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh { return nn.NewTanh() }

// Sequential chains modules, feeding each output into the next module.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container over the given modules.
func NewSequential(modules ...Module) *Sequential { return nn.NewSequential(modules...) }

// NewMLP builds a multi-layer perceptron from layer sizes, with ReLU between
// hidden layers and a linear final layer.
func NewMLP(rng *rand.Rand, sizes ...int) *Sequential { return nn.NewMLP(rng, sizes...) }

// MSE wires the mean squared error between predictions and targets, yielding
// a scalar node. target may be a *graph.Node or any raw value graph.Const
// accepts.
func MSE(pred *graph.Node, target any) *graph.Node { return nn.MSE(pred, target) }

// Xavier returns a weight array drawn from the Glorot uniform distribution.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Dense {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}
