package optim

import (
	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * gradient
//
// With momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*graph.Node
	lr         float64
	momentum   float64
	velocities map[*graph.Node]*tensor.Dense
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameter leaves.
func NewSGD(params []*graph.Node, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*graph.Node]*tensor.Dense),
	}
}

// Step performs a single optimization step over all parameters.
func (s *SGD) Step() error {
	for _, p := range s.params {
		g, err := paramGrad(p)
		if err != nil {
			return err
		}
		update := g
		if s.momentum > 0 {
			v, ok := s.velocities[p]
			if !ok {
				v = tensor.Zeros(p.Shape())
			}
			v = tensor.Add(tensor.Scale(v, s.momentum), g)
			s.velocities[p] = v
			update = v
		}
		if err := p.SetData(tensor.Add(p.Data(), tensor.Scale(update, -s.lr))); err != nil {
			return err
		}
	}
	return nil
}

// LR returns the learning rate.
func (s *SGD) LR() float64 { return s.lr }
