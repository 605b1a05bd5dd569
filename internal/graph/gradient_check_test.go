package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// checkGradients compares the engine's gradient for x against central finite
// differences of the scalar loss. The graph is built once; each probe lands
// through SetData so the cached topology is exercised the way training does.
func checkGradients(t *testing.T, loss, x *graph.Node, base *tensor.Dense) {
	t.Helper()
	const eps = 1e-5

	require.NoError(t, x.SetData(base))
	require.NoError(t, loss.Forward(nil))
	require.NoError(t, loss.Backward())
	analytic := x.Grad().Clone()

	for i := range base.Data() {
		probe := base.Clone()

		probe.Data()[i] = base.Data()[i] + eps
		require.NoError(t, x.SetData(probe))
		require.NoError(t, loss.Forward(nil))
		plus := loss.Data().Data()[0]

		probe.Data()[i] = base.Data()[i] - eps
		require.NoError(t, x.SetData(probe))
		require.NoError(t, loss.Forward(nil))
		minus := loss.Data().Data()[0]

		numeric := (plus - minus) / (2 * eps)
		require.InDelta(t, numeric, analytic.Data()[i], 1e-4,
			"element %d: analytic %v vs numeric %v", i, analytic.Data()[i], numeric)
	}
}

// randDense fills a tensor with uniform values in [lo, hi).
func randDense(rng *rand.Rand, shape tensor.Shape, lo, hi float64) *tensor.Dense {
	d := tensor.New(shape)
	for i := range d.Data() {
		d.Data()[i] = lo + (hi-lo)*rng.Float64()
	}
	return d
}

func TestGradCheckAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	shape := tensor.Shape{2, 3}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Add(w).Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -2, 2))
}

func TestGradCheckAddBroadcast(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := graph.Const(tensor.Zeros(tensor.Shape{3}))
	a := graph.Const(randDense(rng, tensor.Shape{2, 3}, -1, 1))
	loss := a.Add(x).Mul(a).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{3}, -2, 2))
}

func TestGradCheckMul(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	shape := tensor.Shape{2, 2}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, 0.5, 1.5))
	loss := x.Mul(x).Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -2, 2))
}

func TestGradCheckDiv(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	shape := tensor.Shape{4}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := w.Div(x).Sum()
	// Keep x away from zero so the quotient stays well conditioned.
	checkGradients(t, loss, x, randDense(rng, shape, 1, 2))
}

func TestGradCheckPow(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	shape := tensor.Shape{3}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Pow(3).Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -2, 2))
}

func TestGradCheckMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	x := graph.Const(tensor.Zeros(tensor.Shape{2, 3}))
	w := graph.Const(randDense(rng, tensor.Shape{3, 4}, -1, 1))
	c := graph.Const(randDense(rng, tensor.Shape{2, 4}, -1, 1))
	loss := x.MatMul(w).Mul(c).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{2, 3}, -1, 1))
}

func TestGradCheckMatMulRight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := graph.Const(randDense(rng, tensor.Shape{2, 3}, -1, 1))
	x := graph.Const(tensor.Zeros(tensor.Shape{3, 2}))
	c := graph.Const(randDense(rng, tensor.Shape{2, 2}, -1, 1))
	loss := a.MatMul(x).Mul(c).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{3, 2}, -1, 1))
}

func TestGradCheckTensordotTwoAxes(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	x := graph.Const(tensor.Zeros(tensor.Shape{2, 3, 4}))
	b := graph.Const(randDense(rng, tensor.Shape{4, 3, 2}, -1, 1))
	c := graph.Const(randDense(rng, tensor.Shape{2, 2}, -1, 1))
	loss := x.Tensordot(b, 2).Mul(c).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{2, 3, 4}, -1, 1))
}

func TestGradCheckTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	x := graph.Const(tensor.Zeros(tensor.Shape{2, 3, 4}))
	c := graph.Const(randDense(rng, tensor.Shape{4, 2, 3}, -1, 1))
	loss := x.Transpose(2, 0, 1).Mul(c).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{2, 3, 4}, -1, 1))
}

func TestGradCheckReLU(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	shape := tensor.Shape{8}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.ReLU().Mul(w).Sum()
	// Sample away from the kink at zero.
	base := randDense(rng, shape, 0.1, 2)
	for i := range base.Data() {
		if rng.Intn(2) == 0 {
			base.Data()[i] = -base.Data()[i]
		}
	}
	checkGradients(t, loss, x, base)
}

func TestGradCheckLog(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	shape := tensor.Shape{4}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Log().Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, 0.5, 3))
}

func TestGradCheckLog1p(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	shape := tensor.Shape{4}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Log1p().Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -0.5, 2))
}

func TestGradCheckTanh(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	shape := tensor.Shape{5}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Tanh().Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -2, 2))
}

func TestGradCheckArctanh(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	shape := tensor.Shape{5}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Arctanh().Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -0.8, 0.8))
}

func TestGradCheckArcsin(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	shape := tensor.Shape{5}
	x := graph.Const(tensor.Zeros(shape))
	w := graph.Const(randDense(rng, shape, -1, 1))
	loss := x.Arcsin().Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, shape, -0.8, 0.8))
}

func TestGradCheckSumAxes(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	x := graph.Const(tensor.Zeros(tensor.Shape{2, 3, 4}))
	w := graph.Const(randDense(rng, tensor.Shape{3}, -1, 1))
	loss := x.Sum(0, 2).Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{2, 3, 4}, -1, 1))
}

func TestGradCheckMeanAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	x := graph.Const(tensor.Zeros(tensor.Shape{3, 4}))
	w := graph.Const(randDense(rng, tensor.Shape{3}, -1, 1))
	loss := x.Mean(1).Mul(w).Sum()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{3, 4}, -1, 1))
}

func TestGradCheckMLPShapedComposite(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	x := graph.Const(tensor.Zeros(tensor.Shape{4, 3}))
	w1 := graph.Const(randDense(rng, tensor.Shape{3, 5}, -0.5, 0.5))
	b1 := graph.Const(randDense(rng, tensor.Shape{5}, -0.5, 0.5))
	w2 := graph.Const(randDense(rng, tensor.Shape{5, 1}, -0.5, 0.5))
	loss := x.MatMul(w1).Add(b1).Tanh().MatMul(w2).Pow(2).Mean()
	checkGradients(t, loss, x, randDense(rng, tensor.Shape{4, 3}, -1, 1))
}
