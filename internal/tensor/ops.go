package tensor

import "math"

// broadcastStrides returns, for every dimension of dst, the effective
// row-major stride into src when src is broadcast to dst. Dimensions that
// src lacks, or holds with size 1, get stride 0 so the same source element
// is reused along them.
func broadcastStrides(src, dst Shape) []int {
	srcStrides := src.Strides()
	eff := make([]int, len(dst))
	offset := len(dst) - len(src)
	for d := range dst {
		sd := d - offset
		if sd >= 0 && src[sd] != 1 {
			eff[d] = srcStrides[sd]
		}
	}
	return eff
}

// apply2 applies f element-wise to a and b under broadcasting.
// Panics when the shapes are not broadcast-compatible; the graph builder
// validates shapes before any forward pass reaches this point.
func apply2(a, b *Dense, f func(x, y float64) float64) *Dense {
	if !a.shape.Equal(b.shape) {
		outShape, err := BroadcastShapes(a.shape, b.shape)
		if err != nil {
			panic("tensor: " + err.Error())
		}
		a, b = BroadcastTo(a, outShape), BroadcastTo(b, outShape)
	}
	out := New(a.shape)
	for i := range out.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out
}

// Add returns the broadcast element-wise sum a + b.
func Add(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x + y })
}

// Mul returns the broadcast element-wise product a * b.
func Mul(a, b *Dense) *Dense {
	return apply2(a, b, func(x, y float64) float64 { return x * y })
}

// Map applies f to every element of a, producing a new array.
func Map(a *Dense, f func(float64) float64) *Dense {
	out := New(a.shape)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Scale returns a * s element-wise.
func Scale(a *Dense, s float64) *Dense {
	return Map(a, func(v float64) float64 { return v * s })
}

// Pow returns a ** p element-wise.
func Pow(a *Dense, p float64) *Dense {
	return Map(a, func(v float64) float64 { return math.Pow(v, p) })
}

// BroadcastTo stretches a to the target shape under broadcasting rules.
// Panics when a cannot broadcast to the target.
func BroadcastTo(a *Dense, target Shape) *Dense {
	if a.shape.Equal(target) {
		return a.Clone()
	}
	resolved, err := BroadcastShapes(a.shape, target)
	if err != nil || !resolved.Equal(target) {
		panic("tensor: cannot broadcast " + a.shape.String() + " to " + target.String())
	}
	out := New(target)
	dstStrides := target.Strides()
	eff := broadcastStrides(a.shape, target)
	for i := range out.data {
		si := 0
		rem := i
		for d, s := range dstStrides {
			coord := rem / s
			rem %= s
			si += coord * eff[d]
		}
		out.data[i] = a.data[si]
	}
	return out
}

