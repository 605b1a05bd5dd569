// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Graft's dense arrays.
package tensor

import (
	"github.com/graft-ml/graft/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4; Shape{} is a
// scalar.
type Shape = tensor.Shape

// Dense is a row-major n-dimensional float64 array.
type Dense = tensor.Dense

// New creates a zero-filled array of the given shape.
func New(shape Shape) *Dense { return tensor.New(shape) }

// FromSlice creates an array from a flat row-major slice and a shape.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// FromRows creates a 2-D array from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Dense, error) { return tensor.FromRows(rows) }

// Scalar creates a 0-dimensional array holding v.
func Scalar(v float64) *Dense { return tensor.Scalar(v) }

// Zeros creates a zero-filled array of the given shape.
func Zeros(shape Shape) *Dense { return tensor.Zeros(shape) }

// Ones creates a one-filled array of the given shape.
func Ones(shape Shape) *Dense { return tensor.Ones(shape) }

// Full creates an array of the given shape filled with v.
func Full(shape Shape, v float64) *Dense { return tensor.Full(shape, v) }

// BroadcastShapes resolves the NumPy-style broadcast of two shapes, or
// reports why they are incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) { return tensor.BroadcastShapes(a, b) }

// Add returns the broadcast element-wise sum a + b.
func Add(a, b *Dense) *Dense { return tensor.Add(a, b) }

// Mul returns the broadcast element-wise product a * b.
func Mul(a, b *Dense) *Dense { return tensor.Mul(a, b) }

// Scale returns a * v element-wise.
func Scale(a *Dense, v float64) *Dense { return tensor.Scale(a, v) }

// Sum reduces a over the given axes, removing them from the shape. With no
// axes the whole array reduces to a scalar.
func Sum(a *Dense, axes ...int) *Dense { return tensor.Sum(a, axes...) }

// Transpose permutes the axes of a; with no axes given the dimension order
// is reversed.
func Transpose(a *Dense, axes ...int) *Dense { return tensor.Transpose(a, axes...) }

// Tensordot contracts the last axes dimensions of a against the first axes
// dimensions of b, pairing a's axis -1 with b's axis 0, -2 with 1, and so
// on. axes=1 is the matrix product; axes=0 the outer product.
func Tensordot(a, b *Dense, axes int) *Dense { return tensor.Tensordot(a, b, axes) }
