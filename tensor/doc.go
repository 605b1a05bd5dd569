// Copyright 2026 Graft ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense n-dimensional float64 arrays for the Graft
// autodiff engine.
//
// # Overview
//
// Dense arrays are the values flowing through Graft's computation graphs.
// This package provides:
//   - Dense: a row-major float64 n-d array with explicit Shape
//   - NumPy-style broadcasting for element-wise operations
//   - Reductions (Sum), axis permutation (Transpose) and tensor
//     contraction (Tensordot)
//
// # Basic Usage
//
//	import "github.com/graft-ml/graft/tensor"
//
//	func main() {
//	    a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	    b := tensor.Ones(tensor.Shape{2})
//
//	    c := tensor.Add(a, b)          // broadcast element-wise sum
//	    d := tensor.Tensordot(a, b, 1) // matrix-vector product
//	    s := tensor.Sum(d)             // scalar reduction
//	}
//
// # Broadcasting
//
// Element-wise operations align shapes from the trailing dimensions:
// dimensions of size 1 stretch to match, and missing leading dimensions are
// treated as size 1. Incompatible shapes are rejected by BroadcastShapes.
//
// Arrays hold float64 throughout; the engine's gradients stay in the same
// precision as its values.
package tensor
