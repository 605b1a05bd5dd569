package graph

import "fmt"

// Topology returns the node's dependency graph in dependency order: every
// node appears after all of its parents, so iterating forward evaluates
// leaves before consumers and iterating in reverse visits the root before
// its producers. Nodes reachable through multiple paths appear exactly once.
//
// The order is computed by a depth-first traversal on first use and
// memoized on the terminal node; every subsequent Forward and Backward call
// on the same terminal reuses it. This trades correctness-under-mutation
// for speed: the engine assumes the graph's wiring is static, which the API
// guarantees by never exposing a way to rewire a built node.
//
// The returned slice is the cache itself and must not be modified.
func (n *Node) Topology() []*Node {
	if n.topo != nil {
		return n.topo
	}

	order := make([]*Node, 0, 16)
	visited := make(map[*Node]bool)
	onStack := make(map[*Node]bool)

	var visit func(v *Node)
	visit = func(v *Node) {
		if onStack[v] {
			// Wiring is fixed at construction, so this is corrupted state,
			// not a recoverable condition.
			panic(fmt.Errorf("graph: %w at node %s", ErrCyclicGraph, v.label()))
		}
		if visited[v] {
			return
		}
		visited[v] = true
		onStack[v] = true
		for _, p := range v.parents {
			visit(p)
		}
		onStack[v] = false
		order = append(order, v)
	}
	visit(n)

	n.topo = order
	return n.topo
}
