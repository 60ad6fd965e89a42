// File: internal/stack/discovery.go
// Brief: Filesystem discovery of stack dependencies.json files.

package stack

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultMaxDepth bounds how deep below the base directory stacks are
// discovered.
const DefaultMaxDepth = 2

// Discovered is one stack found on disk, paired with its parsed and
// validated configuration.
type Discovered struct {
	ID           string
	Dependencies []string
	Config       Config
}

// Discover walks root up to maxDepth directory levels and returns every
// stack that carries a dependencies.json, in walk order. A directory
// without a configuration file is not an error; it is simply never
// reported.
func Discover(root string, maxDepth int) ([]Discovered, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var found []Discovered
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", ".terraform", "bin", "dist":
				if path != absRoot {
					return fs.SkipDir
				}
			}
			if depthBelow(absRoot, path) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != ConfigFileName {
			return nil
		}
		dir := filepath.Dir(path)
		id := stackID(absRoot, dir)
		deps, cfg, err := LoadConfig(path, id)
		if err != nil {
			return err
		}
		found = append(found, Discovered{ID: id, Dependencies: deps, Config: cfg})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// stackID normalizes a stack directory to its ./-prefixed relative
// slash path, the identifier form dependencies.json entries use.
func stackID(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		rel = dir
	}
	return "./" + filepath.ToSlash(rel)
}

func depthBelow(root, dir string) int {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
