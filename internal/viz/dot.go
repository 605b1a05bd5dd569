// Package viz renders computation graphs in Graphviz DOT format.
//
// The renderer consumes the engine only through the node read accessors
// (Topology, Parents, Data, Grad, Shape, Name, OpName), showing each node's
// value/gradient pair next to its operator.
package viz

import (
	"fmt"
	"strings"

	"github.com/graft-ml/graft/internal/graph"
	"github.com/graft-ml/graft/internal/tensor"
)

// maxInlineElements bounds how many values are printed inline per node;
// larger arrays show only their shape.
const maxInlineElements = 8

// Dot renders the dependency graph of root as a Graphviz DOT digraph, with
// edges pointing from each operand to its consumer.
func Dot(root *graph.Node) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=record, fontname=\"monospace\"];\n")

	topo := root.Topology()
	ids := make(map[*graph.Node]int, len(topo))
	for i, n := range topo {
		ids[n] = i
		fmt.Fprintf(&sb, "  n%d [label=\"{%s|data %s|grad %s}\"];\n",
			i, escape(title(n)), escape(summary(n.Data(), n.Shape())), escape(summary(n.Grad(), n.Shape())))
	}
	for _, n := range topo {
		for _, p := range n.Parents() {
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", ids[p], ids[n])
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// title labels a node by its placeholder name, operator, or constant role.
func title(n *graph.Node) string {
	switch {
	case n.Name() != "":
		return n.Name() + " " + n.Shape().String()
	case n.OpName() != "":
		return n.OpName() + " " + n.Shape().String()
	default:
		return "const " + n.Shape().String()
	}
}

// summary prints small arrays inline and larger ones by shape only.
func summary(d *tensor.Dense, shape tensor.Shape) string {
	if d == nil {
		return "-"
	}
	if d.NumElements() > maxInlineElements {
		return shape.String()
	}
	parts := make([]string, d.NumElements())
	for i, v := range d.Data() {
		parts[i] = fmt.Sprintf("%.4g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func escape(s string) string {
	r := strings.NewReplacer(`"`, `\"`, "{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)
	return r.Replace(s)
}
