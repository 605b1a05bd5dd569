package graph

import (
	"github.com/graft-ml/graft/internal/graph/op"
	"github.com/graft-ml/graft/internal/tensor"
)

// apply constructs a derived node wired to its operands. The operator's
// shape contract is checked here, so incompatible operand shapes fail at
// construction time; nothing is evaluated.
func apply(o op.Operation, parents ...*Node) *Node {
	shapes := make([]tensor.Shape, len(parents))
	for i, p := range parents {
		shapes[i] = p.shape
	}
	out, err := o.OutShape(shapes)
	if err != nil {
		panic(&ShapeError{Op: o.Name(), Shapes: shapes, Reason: err.Error()})
	}
	return &Node{shape: out, op: o, parents: parents}
}

// Add returns a node computing the broadcast element-wise sum n + other.
// other may be a *Node or any raw value Const accepts.
func (n *Node) Add(other any) *Node {
	return apply(op.Add{}, n, asNode(other))
}

// Mul returns a node computing the broadcast element-wise product n * other.
func (n *Node) Mul(other any) *Node {
	return apply(op.Mul{}, n, asNode(other))
}

// Neg returns a node computing -n, composed as n * -1.
func (n *Node) Neg() *Node {
	return n.Mul(-1.0)
}

// Sub returns a node computing n - other, composed as n + (-other).
func (n *Node) Sub(other any) *Node {
	return n.Add(asNode(other).Neg())
}

// Div returns a node computing n / other, composed as n * other**-1.
func (n *Node) Div(other any) *Node {
	return n.Mul(asNode(other).Pow(-1))
}

// Pow returns a node raising n to a scalar exponent element-wise.
func (n *Node) Pow(p float64) *Node {
	return apply(op.Pow{Exponent: p}, n)
}

// MatMul returns a node contracting n's last axis with other's first axis:
// the standard matrix, matrix-vector, or tensor product over one axis pair.
func (n *Node) MatMul(other any) *Node {
	return n.Tensordot(other, 1)
}

// Tensordot returns a node contracting the last axes dimensions of n against
// the first axes dimensions of other, pairing n's axis -1 with other's axis
// 0, -2 with 1, and so on. axes=0 is the outer product.
func (n *Node) Tensordot(other any, axes int) *Node {
	return apply(op.Tensordot{Axes: axes}, n, asNode(other))
}

// T returns a node with all axes reversed.
func (n *Node) T() *Node {
	return n.Transpose()
}

// Transpose returns a node permuting n's axes; with no arguments the order
// of all dimensions is reversed.
func (n *Node) Transpose(axes ...int) *Node {
	if len(axes) == 0 {
		axes = make([]int, len(n.shape))
		for i := range axes {
			axes[i] = len(n.shape) - 1 - i
		}
	}
	return apply(op.Transpose{Axes: axes}, n)
}

// ReLU returns a node computing max(0, n) element-wise.
func (n *Node) ReLU() *Node {
	return apply(op.ReLU{}, n)
}

// Log returns a node computing the element-wise natural logarithm.
func (n *Node) Log() *Node {
	return apply(op.Log{}, n)
}

// Log1p returns a node computing log(1 + n) element-wise.
func (n *Node) Log1p() *Node {
	return apply(op.Log1p{}, n)
}

// Tanh returns a node computing the element-wise hyperbolic tangent.
func (n *Node) Tanh() *Node {
	return apply(op.Tanh{}, n)
}

// Arctanh returns a node computing the element-wise inverse hyperbolic
// tangent.
func (n *Node) Arctanh() *Node {
	return apply(op.Arctanh{}, n)
}

// Arcsin returns a node computing the element-wise inverse sine.
func (n *Node) Arcsin() *Node {
	return apply(op.Arcsin{}, n)
}

// Sum returns a node reducing n over the given axes, removing them from the
// shape. With no axes the whole array reduces to a scalar. Negative axes
// count from the end.
func (n *Node) Sum(axes ...int) *Node {
	return apply(op.Sum{Axes: axes}, n)
}

// Mean returns a node averaging n over the given axes, composed as
// sum(axes) * (1/count) where count is the product of the reduced dimension
// sizes. With no axes the whole array reduces to its scalar mean.
func (n *Node) Mean(axes ...int) *Node {
	norm, err := n.shape.NormalizeAxes(axes)
	if err != nil {
		panic(&ShapeError{Op: "mean", Shapes: []tensor.Shape{n.shape}, Reason: err.Error()})
	}
	count := 1
	for _, ax := range norm {
		count *= n.shape[ax]
	}
	return n.Sum(axes...).Mul(1 / float64(count))
}
