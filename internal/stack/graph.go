// File: internal/stack/graph.go
// Brief: Dependency graph construction and merge semantics.

package stack

import (
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// Observer receives node and edge creation events, typically to build a
// visual rendering of the graph. Attaching one never changes graph
// behavior or ordering.
type Observer interface {
	NodeAdded(id string)
	EdgeAdded(from, to string)
}

// Graph maps stack ids to nodes. Insertion order is preserved and is an
// observable part of the final ordering for unrelated stacks.
type Graph struct {
	baseDir  string
	nodes    map[string]*Node
	order    []string
	log      logr.Logger
	observer Observer
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger attaches a logger for merge diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(g *Graph) { g.log = log }
}

// WithObserver attaches a pure observer for node/edge events.
func WithObserver(o Observer) Option {
	return func(g *Graph) { g.observer = o }
}

// NewGraph returns an empty graph whose directory-existence checks run
// against baseDir.
func NewGraph(baseDir string, opts ...Option) *Graph {
	g := &Graph{
		baseDir: baseDir,
		nodes:   map[string]*Node{},
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node for id, or nil.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// NodesInOrder returns all nodes in first-insertion order.
func (g *Graph) NodesInOrder() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Insert adds stackID with its declared dependencies. A stack first seen
// as someone else's dependency is created with default metadata; a later
// Insert for its own declaration overwrites the defaults, logging a
// warning per changed field. A dependency whose directory does not exist
// fails immediately. Repeated Insert calls for the same id append
// edges; an edge already present is not duplicated.
func (g *Graph) Insert(stackID string, dependencyIDs []string, cfg Config) error {
	node, existed := g.ensureNode(stackID, cfg)
	if existed {
		g.applyConfig(node, cfg)
	}
	for _, depID := range dependencyIDs {
		dep, _ := g.ensureNode(depID, DefaultConfig())
		if !dep.HasBackingDir {
			return &UnknownDependencyError{Stack: stackID, Dependency: depID}
		}
		if node.hasEdgeTo(depID) {
			continue
		}
		node.DependsOn = append(node.DependsOn, dep)
		if g.observer != nil {
			g.observer.EdgeAdded(stackID, depID)
		}
		g.log.V(1).Info("added dependency edge", "stack", stackID, "dependsOn", depID)
	}
	return nil
}

func (n *Node) hasEdgeTo(id string) bool {
	for _, dep := range n.DependsOn {
		if dep.ID == id {
			return true
		}
	}
	return false
}

func (g *Graph) ensureNode(id string, cfg Config) (*Node, bool) {
	if n, ok := g.nodes[id]; ok {
		return n, true
	}
	n := &Node{
		ID:                 id,
		RunnerLabel:        cfg.RunnerLabel,
		PlannedChanges:     cfg.PlannedChanges,
		SkipWhenDestroying: cfg.SkipWhenDestroying,
		HasBackingDir:      g.dirExists(id),
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	if g.observer != nil {
		g.observer.NodeAdded(id)
	}
	g.log.V(1).Info("created node", "stack", id, "hasBackingDir", n.HasBackingDir)
	return n, false
}

// applyConfig overwrites a node's metadata with its authoritative
// declaration. The common case is a node first seen as a bare
// dependency, so changed fields are a diagnostic, not a failure.
func (g *Graph) applyConfig(n *Node, cfg Config) {
	if n.RunnerLabel != cfg.RunnerLabel {
		g.log.Info("stack re-declared with different runner-label", "stack", n.ID, "old", n.RunnerLabel, "new", cfg.RunnerLabel)
		n.RunnerLabel = cfg.RunnerLabel
	}
	if n.PlannedChanges != cfg.PlannedChanges {
		g.log.Info("stack re-declared with different planned-changes", "stack", n.ID, "old", n.PlannedChanges, "new", cfg.PlannedChanges)
		n.PlannedChanges = cfg.PlannedChanges
	}
	if n.SkipWhenDestroying != cfg.SkipWhenDestroying {
		g.log.Info("stack re-declared with different skip_when_destroying", "stack", n.ID, "old", n.SkipWhenDestroying, "new", cfg.SkipWhenDestroying)
		n.SkipWhenDestroying = cfg.SkipWhenDestroying
	}
}

func (g *Graph) dirExists(id string) bool {
	info, err := os.Stat(filepath.Join(g.baseDir, filepath.FromSlash(id)))
	return err == nil && info.IsDir()
}
