// File: internal/stack/validate.go
// Brief: Cycle detection over the dependency relation.

package stack

// Validate proves the dependency relation is acyclic, or returns a
// CycleError naming the edge that closed a cycle. It must run before
// Order; a graph that fails validation is never ordered.
func (g *Graph) Validate() error {
	finished := map[string]struct{}{}
	for _, n := range g.NodesInOrder() {
		if _, done := finished[n.ID]; done {
			continue
		}
		// The recursion stack is scoped to this root's traversal:
		// pushed on entry, popped on exit.
		if err := visitForCycles(n, finished, map[string]struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

func visitForCycles(n *Node, finished, onPath map[string]struct{}) error {
	onPath[n.ID] = struct{}{}
	for _, dep := range n.DependsOn {
		if _, done := finished[dep.ID]; done {
			continue
		}
		if _, open := onPath[dep.ID]; open {
			return &CycleError{From: n.ID, To: dep.ID}
		}
		if err := visitForCycles(dep, finished, onPath); err != nil {
			return err
		}
	}
	delete(onPath, n.ID)
	finished[n.ID] = struct{}{}
	return nil
}
