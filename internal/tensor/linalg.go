package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transpose permutes the axes of a. With no axes given the order of all
// dimensions is reversed (the matrix transpose, generalized). Otherwise axes
// must be a permutation of [0, ndim).
func Transpose(a *Dense, axes ...int) *Dense {
	ndim := a.NDim()
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("tensor: transpose axes %v do not match shape %v", axes, a.shape))
	}
	seen := make([]bool, ndim)
	outShape := make(Shape, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("tensor: transpose axes %v are not a permutation of %d dimensions", axes, ndim))
		}
		seen[ax] = true
		outShape[i] = a.shape[ax]
	}

	out := New(outShape)
	srcStrides := a.shape.Strides()
	dstStrides := outShape.Strides()
	for i := range out.data {
		si := 0
		rem := i
		for d, s := range dstStrides {
			coord := rem / s
			rem %= s
			si += coord * srcStrides[axes[d]]
		}
		out.data[i] = a.data[si]
	}
	return out
}

// InversePermutation returns the permutation that undoes axes.
func InversePermutation(axes []int) []int {
	inv := make([]int, len(axes))
	for i, ax := range axes {
		inv[ax] = i
	}
	return inv
}

// TensordotShape resolves the result shape of Tensordot and validates the
// contraction contract: the last `axes` dimensions of a pair with the first
// `axes` dimensions of b in reversed order (a's axis -1 contracts b's axis 0,
// a's axis -2 contracts b's axis 1, and so on).
func TensordotShape(a, b Shape, axes int) (Shape, error) {
	if axes < 0 {
		return nil, fmt.Errorf("tensordot: axes must be non-negative, got %d", axes)
	}
	if axes > len(a) || axes > len(b) {
		return nil, fmt.Errorf("tensordot: cannot contract %d axes between shapes %v and %v", axes, a, b)
	}
	for j := 0; j < axes; j++ {
		if a[len(a)-1-j] != b[j] {
			return nil, fmt.Errorf("tensordot: shapes %v and %v disagree on contracted axis pair (%d, %d): %d vs %d",
				a, b, len(a)-1-j, j, a[len(a)-1-j], b[j])
		}
	}
	out := make(Shape, 0, len(a)+len(b)-2*axes)
	out = append(out, a[:len(a)-axes]...)
	out = append(out, b[axes:]...)
	return out, nil
}

// Tensordot contracts the last `axes` dimensions of a against the first
// `axes` dimensions of b, pairing a's trailing axes with b's leading axes in
// reversed order (see TensordotShape). axes=1 is the standard matrix or
// matrix-vector product; axes=0 is the outer product.
//
// The contraction is lowered to a single 2-D multiply: a is viewed as an
// (M, K) matrix, b's leading axes are reversed to line up with a's K order
// and viewed as (K, N), and gonum performs the product.
func Tensordot(a, b *Dense, axes int) *Dense {
	outShape, err := TensordotShape(a.shape, b.shape, axes)
	if err != nil {
		panic("tensor: " + err.Error())
	}

	m := Shape(a.shape[:a.NDim()-axes]).NumElements()
	k := Shape(a.shape[a.NDim()-axes:]).NumElements()
	n := Shape(b.shape[axes:]).NumElements()

	// b's first `axes` dimensions run in the opposite order of a's trailing
	// dimensions, so reverse them before flattening to (K, N).
	right := b
	if axes > 1 {
		perm := make([]int, b.NDim())
		for j := 0; j < axes; j++ {
			perm[j] = axes - 1 - j
		}
		for j := axes; j < b.NDim(); j++ {
			perm[j] = j
		}
		right = Transpose(b, perm...)
	}

	am := mat.NewDense(m, k, a.data)
	bm := mat.NewDense(k, n, right.data)
	cm := mat.NewDense(m, n, nil)
	cm.Mul(am, bm)

	out := New(outShape)
	copy(out.data, cm.RawMatrix().Data)
	return out
}
