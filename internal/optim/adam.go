package optim

import (
	"math"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient      // first moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²     // second moment
//	m_hat = m_t / (1 - beta1^t)                       // bias correction
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
type Adam struct {
	params []*graph.Node
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // timestep for bias correction
	m      map[*graph.Node]*tensor.Dense
	v      map[*graph.Node]*tensor.Dense
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // learning rate (default: 0.001)
	Betas [2]float64 // moving-average coefficients (default: [0.9, 0.999])
	Eps   float64    // numerical stability term (default: 1e-8)
}

// NewAdam creates an Adam optimizer over the given parameter leaves.
func NewAdam(params []*graph.Node, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*graph.Node]*tensor.Dense),
		v:      make(map[*graph.Node]*tensor.Dense),
	}
}

// Step performs a single optimization step over all parameters.
func (a *Adam) Step() error {
	a.t++
	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		g, err := paramGrad(p)
		if err != nil {
			return err
		}
		m, ok := a.m[p]
		if !ok {
			m = tensor.Zeros(p.Shape())
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = tensor.Zeros(p.Shape())
			a.v[p] = v
		}

		next := p.Data().Clone()
		md, vd, gd, nd := m.Data(), v.Data(), g.Data(), next.Data()
		for i := range gd {
			md[i] = a.beta1*md[i] + (1-a.beta1)*gd[i]
			vd[i] = a.beta2*vd[i] + (1-a.beta2)*gd[i]*gd[i]
			mHat := md[i] / bc1
			vHat := vd[i] / bc2
			nd[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
		if err := p.SetData(next); err != nil {
			return err
		}
	}
	return nil
}

// LR returns the learning rate.
func (a *Adam) LR() float64 { return a.lr }
