// File: internal/stack/build.go
// Brief: Discovery-to-graph pipeline used by the CLI.

package stack

import (
	"github.com/go-logr/logr"
)

// BuildOptions configure the discovery and graph-construction pass.
type BuildOptions struct {
	MaxDepth int
	Logger   logr.Logger
	Observer Observer
}

// Build discovers every stack under root, inserts them into a fresh
// graph in discovery order, and validates the result. Any failure
// aborts immediately; no partial graph is returned.
func Build(root string, opts BuildOptions) (*Graph, error) {
	found, err := Discover(root, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	gopts := []Option{}
	if opts.Logger.GetSink() != nil {
		gopts = append(gopts, WithLogger(opts.Logger))
	}
	if opts.Observer != nil {
		gopts = append(gopts, WithObserver(opts.Observer))
	}
	g := NewGraph(root, gopts...)
	for _, d := range found {
		if err := g.Insert(d.ID, d.Dependencies, d.Config); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
