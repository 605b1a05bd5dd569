package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

func TestForwardConstants(t *testing.T) {
	a := graph.Const([][]float64{{1, 2}, {3, 4}})
	b := graph.Const([]float64{10, 20})
	c := a.Add(b).Mul(2.0)

	require.NoError(t, c.Forward(nil))
	require.NotNil(t, c.Data())
	assert.Equal(t, []float64{22, 44, 26, 48}, c.Data().Data())
}

func TestForwardBindsPlaceholders(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	y := x.Mul(3.0)

	in, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	require.NoError(t, y.Forward(graph.Bindings{"x": in}))
	assert.Equal(t, []float64{3, 6}, y.Data().Data())

	// The placeholder clones its binding; later caller mutation is invisible.
	in.Set(100, 0)
	assert.Equal(t, []float64{1, 2}, x.Data().Data())
}

func TestForwardRecomputesPerCall(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	y := x.Pow(2).Sum()

	a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	b, _ := tensor.FromSlice([]float64{3, 4}, tensor.Shape{2})

	require.NoError(t, y.Forward(graph.Bindings{"x": a}))
	assert.Equal(t, 5.0, y.Data().Data()[0])

	require.NoError(t, y.Forward(graph.Bindings{"x": b}))
	assert.Equal(t, 25.0, y.Data().Data()[0], "second pass must not reuse stale data")
}

func TestForwardUnboundPlaceholderYieldsNaN(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	c := graph.Const([]float64{1, 2})
	y := x.Add(c)

	require.NoError(t, y.Forward(nil))
	assert.True(t, x.Data().HasNaN())
	assert.True(t, y.Data().HasNaN(), "NaN propagates through downstream ops")
	assert.Equal(t, []float64{1, 2}, c.Data().Data(), "independent branch stays valid")
}

func TestForwardNaNConfinedToDependents(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	clean := graph.Const([]float64{1, 2}).Mul(2.0)
	dirty := x.Mul(2.0)
	root := clean.Add(dirty)

	require.NoError(t, root.Forward(nil))
	assert.False(t, clean.Data().HasNaN(), "branch not depending on the unbound input stays finite")
	assert.True(t, dirty.Data().HasNaN())
	assert.True(t, root.Data().HasNaN())
}

func TestForwardStrictRequiresAllBindings(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2}, "x")
	require.NoError(t, err)
	y := x.Sum()

	err = y.ForwardStrict(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrUnboundPlaceholder))
	assert.Contains(t, err.Error(), `"x"`)

	in, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	assert.NoError(t, y.ForwardStrict(graph.Bindings{"x": in}))
}

func TestForwardRejectsMisshapenBinding(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{2, 3}, "x")
	require.NoError(t, err)
	y := x.Sum()

	bad, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	err = y.Forward(graph.Bindings{"x": bad})
	require.Error(t, err)
	var shapeErr *graph.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestForwardIgnoresUnknownBindings(t *testing.T) {
	x, err := graph.Placeholder(tensor.Shape{1}, "x")
	require.NoError(t, err)
	y := x.Mul(2.0)

	in, _ := tensor.FromSlice([]float64{5}, tensor.Shape{1})
	extra, _ := tensor.FromSlice([]float64{9}, tensor.Shape{1})
	require.NoError(t, y.Forward(graph.Bindings{"x": in, "unused": extra}))
	assert.Equal(t, []float64{10}, y.Data().Data())
}

func TestForwardNaNArithmetic(t *testing.T) {
	// NaN follows IEEE semantics through elementwise math.
	x, err := graph.Placeholder(tensor.Shape{}, "x")
	require.NoError(t, err)
	y := x.Tanh().Add(1.0)

	require.NoError(t, y.Forward(nil))
	assert.True(t, math.IsNaN(y.Data().Data()[0]))
}
