// File: internal/stack/dot.go
// Brief: DOT rendering of the dependency graph via the observer hook.

package stack

import (
	"fmt"
	"io"
	"strings"
)

// DOTBuilder records node and edge events and renders them as a
// Graphviz document. It is a pure observer: attaching it never changes
// the computed plan.
type DOTBuilder struct {
	nodes []string
	edges [][2]string
}

var _ Observer = (*DOTBuilder)(nil)

func NewDOTBuilder() *DOTBuilder { return &DOTBuilder{} }

func (b *DOTBuilder) NodeAdded(id string) {
	b.nodes = append(b.nodes, id)
}

func (b *DOTBuilder) EdgeAdded(from, to string) {
	b.edges = append(b.edges, [2]string{from, to})
}

// WriteTo emits the recorded graph. Edge direction follows the
// dependency relation: from depends on to => from -> to.
func (b *DOTBuilder) WriteTo(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("digraph tfstack {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	for _, id := range b.nodes {
		fmt.Fprintf(&sb, "  %q;\n", id)
	}
	for _, e := range b.edges {
		fmt.Fprintf(&sb, "  %q -> %q;\n", e[0], e[1])
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
