package tensor

// ReducedShape returns the shape left after removing the given axes.
// Axes must already be normalized (non-negative, in range, unique).
// Reducing every axis yields the scalar shape.
func ReducedShape(s Shape, axes []int) Shape {
	reduced := make([]bool, len(s))
	for _, ax := range axes {
		reduced[ax] = true
	}
	out := make(Shape, 0, len(s)-len(axes))
	for d, dim := range s {
		if !reduced[d] {
			out = append(out, dim)
		}
	}
	return out
}

// reductionStrides returns, for every dimension of src, the row-major stride
// into the reduced output; reduced dimensions get stride 0 so their
// coordinates collapse onto the same output element.
func reductionStrides(src Shape, axes []int) []int {
	reduced := make([]bool, len(src))
	for _, ax := range axes {
		reduced[ax] = true
	}
	outStrides := ReducedShape(src, axes).Strides()
	eff := make([]int, len(src))
	k := 0
	for d := range src {
		if reduced[d] {
			continue
		}
		eff[d] = outStrides[k]
		k++
	}
	return eff
}

// Sum reduces a over the given axes (all axes when none are given, yielding
// a scalar). Negative axes count from the end. The reduced axes are removed
// from the result shape.
func Sum(a *Dense, axes ...int) *Dense {
	norm, err := a.shape.NormalizeAxes(axes)
	if err != nil {
		panic("tensor: " + err.Error())
	}
	out := New(ReducedShape(a.shape, norm))
	srcStrides := a.shape.Strides()
	eff := reductionStrides(a.shape, norm)
	for i, v := range a.data {
		oi := 0
		rem := i
		for d, s := range srcStrides {
			coord := rem / s
			rem %= s
			oi += coord * eff[d]
		}
		out.data[oi] += v
	}
	return out
}

// Unreduce is the adjoint of Sum: it broadcasts a reduced gradient back over
// the axes that Sum removed, producing an array of the original src shape.
// Each source element receives the gradient of the output element it was
// summed into; no scaling is applied.
func Unreduce(grad *Dense, src Shape, axes []int) *Dense {
	out := New(src)
	srcStrides := src.Strides()
	eff := reductionStrides(src, axes)
	for i := range out.data {
		gi := 0
		rem := i
		for d, s := range srcStrides {
			coord := rem / s
			rem %= s
			gi += coord * eff[d]
		}
		out.data[i] = grad.data[gi]
	}
	return out
}

// ReduceTo sums grad down to the target shape, undoing broadcasting: leading
// dimensions the target lacks are summed away, and dimensions where the
// target holds size 1 are summed into that single slot. This maps an
// output-shaped gradient back onto a smaller-shaped operand.
func ReduceTo(grad *Dense, target Shape) *Dense {
	if grad.shape.Equal(target) {
		return grad.Clone()
	}
	out := New(target)
	srcStrides := grad.shape.Strides()
	eff := broadcastStrides(target, grad.shape)
	for i, v := range grad.data {
		ti := 0
		rem := i
		for d, s := range srcStrides {
			coord := rem / s
			rem %= s
			ti += coord * eff[d]
		}
		out.data[ti] += v
	}
	return out
}
