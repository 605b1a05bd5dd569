// Package tensor implements the dense n-dimensional float64 arrays that back
// the graph engine.
//
// The package provides:
//   - Dense: a row-major n-d array with NumPy-style broadcasting
//   - Shape: dimension bookkeeping, strides, broadcast resolution
//   - Element-wise, reduction and contraction operations used by the
//     operator library
//
// All operations allocate fresh result arrays; nothing here mutates its
// operands except Dense.AddAssign, which exists for gradient accumulation.
package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a dense, row-major n-dimensional array of float64 values.
type Dense struct {
	shape Shape
	data  []float64
}

// New creates a zero-filled Dense with the given shape.
func New(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return &Dense{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// FromSlice creates a Dense from a flat row-major slice and a shape.
// The slice is copied. Returns an error when the element count does not
// match the shape.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	d := New(shape)
	copy(d.data, data)
	return d, nil
}

// FromRows creates a 2-D Dense from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("FromRows: no rows given")
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return FromSlice(flat, Shape{len(rows), cols})
}

// Scalar creates a zero-dimensional Dense holding a single value.
func Scalar(v float64) *Dense {
	d := New(Shape{})
	d.data[0] = v
	return d
}

// Full creates a Dense with every element set to v.
func Full(shape Shape, v float64) *Dense {
	d := New(shape)
	for i := range d.data {
		d.data[i] = v
	}
	return d
}

// Zeros creates a zero-filled Dense.
func Zeros(shape Shape) *Dense { return New(shape) }

// Ones creates a Dense filled with ones.
func Ones(shape Shape) *Dense { return Full(shape, 1) }

// NaNs creates a Dense filled with NaN. Used to represent unbound
// placeholder values so that missing inputs surface as NaN downstream.
func NaNs(shape Shape) *Dense { return Full(shape, math.NaN()) }

// Shape returns the array's shape. The returned slice must not be modified.
func (d *Dense) Shape() Shape { return d.shape }

// NDim returns the number of dimensions.
func (d *Dense) NDim() int { return len(d.shape) }

// NumElements returns the total element count.
func (d *Dense) NumElements() int { return len(d.data) }

// Data returns the underlying row-major element slice.
func (d *Dense) Data() []float64 { return d.data }

// At returns the element at the given indices, one per dimension.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.flatIndex(indices)]
}

// Set stores v at the given indices, one per dimension.
func (d *Dense) Set(v float64, indices ...int) {
	d.data[d.flatIndex(indices)] = v
}

func (d *Dense) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for shape %v", len(indices), d.shape))
	}
	idx := 0
	for i, stride := range d.shape.Strides() {
		if indices[i] < 0 || indices[i] >= d.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of shape %v",
				indices[i], i, d.shape))
		}
		idx += indices[i] * stride
	}
	return idx
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	c := New(d.shape)
	copy(c.data, d.data)
	return c
}

// AddAssign accumulates other into d element-wise. Both arrays must have
// identical shapes; this is the gradient accumulation primitive.
func (d *Dense) AddAssign(other *Dense) {
	if !d.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: AddAssign shape mismatch: %v vs %v", d.shape, other.shape))
	}
	for i, v := range other.data {
		d.data[i] += v
	}
}

// HasNaN reports whether any element is NaN.
func (d *Dense) HasNaN() bool {
	for _, v := range d.data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// AllClose reports whether every element of d is within tol of the
// corresponding element of other. NaN elements are never close.
func (d *Dense) AllClose(other *Dense, tol float64) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the shape and flat contents, for debugging.
func (d *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense%v%v", d.shape, d.data)
	return sb.String()
}
