// File: internal/stack/order.go
// Brief: Deterministic topological ordering of the graph.

package stack

// Order returns every node exactly once, dependencies before
// dependents. For nodes with no dependency relationship between them
// the relative order follows first insertion into the graph. With
// reverse set the completed sequence is inverted as a final step, which
// is the teardown order.
//
// Order assumes Validate has already passed; the visited set still
// guarantees termination on any input.
func (g *Graph) Order(reverse bool) []*Node {
	visited := map[string]struct{}{}
	out := make([]*Node, 0, len(g.nodes))

	var visit func(n *Node)
	visit = func(n *Node) {
		if _, seen := visited[n.ID]; seen {
			return
		}
		visited[n.ID] = struct{}{}
		for _, dep := range n.DependsOn {
			visit(dep)
		}
		out = append(out, n)
	}
	for _, n := range g.NodesInOrder() {
		visit(n)
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
