// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graft-ml/graft/graph"
	"github.com/graft-ml/graft/tensor"
)

// TestFacadeTrainStep drives a full build/forward/backward cycle through the
// re-exported API.
func TestFacadeTrainStep(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2, 2}, "x")
	require.NoError(t, err)
	w := graph.Const([]float64{1, -1})
	loss := x.MatMul(w).ReLU().Sum()

	batch, err := tensor.FromRows([][]float64{{3, 1}, {1, 3}})
	require.NoError(t, err)

	require.NoError(t, loss.Forward(graph.Bindings{"x": batch}))
	// rows contract to [2, -2]; relu keeps 2.
	assert.Equal(t, 2.0, loss.Data().Data()[0])

	require.NoError(t, loss.Backward())
	assert.Equal(t, []float64{3, 1}, w.Grad().Data())
}

func TestFacadeErrors(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	y := x.Sum()

	assert.ErrorIs(t, y.ForwardStrict(nil), graph.ErrUnboundPlaceholder)
	assert.ErrorIs(t, y.Backward(), graph.ErrNotEvaluated)

	assert.Panics(t, func() {
		graph.Const([]float64{1, 2}).Add(graph.Const([]float64{1, 2, 3}))
	})
}
