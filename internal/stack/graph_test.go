package stack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkStackDirs(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
	return root
}

func TestInsert_PlaceholderInheritsDefaults(t *testing.T) {
	root := mkStackDirs(t, "stack1", "stack2")
	g := NewGraph(root)

	cfg := Config{RunnerLabel: RunnerSelfHosted, PlannedChanges: false, SkipWhenDestroying: true}
	if err := g.Insert("./stack1", []string{"./stack2"}, cfg); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dep := g.Node("./stack2")
	if dep == nil {
		t.Fatalf("dependency node was not created")
	}
	if dep.RunnerLabel != RunnerUbuntuLatest || !dep.PlannedChanges || dep.SkipWhenDestroying {
		t.Fatalf("placeholder metadata = %+v, want defaults", dep)
	}
	if !dep.HasBackingDir {
		t.Fatalf("hasBackingDir=false for existing directory")
	}
}

func TestInsert_RedeclarationOverwritesMetadata(t *testing.T) {
	root := mkStackDirs(t, "stack1", "stack2")
	g := NewGraph(root)

	if err := g.Insert("./stack1", []string{"./stack2"}, DefaultConfig()); err != nil {
		t.Fatalf("insert stack1: %v", err)
	}
	declared := Config{RunnerLabel: RunnerSelfHosted, PlannedChanges: false, SkipWhenDestroying: true}
	if err := g.Insert("./stack2", nil, declared); err != nil {
		t.Fatalf("insert stack2: %v", err)
	}

	n := g.Node("./stack2")
	if n.RunnerLabel != RunnerSelfHosted || n.PlannedChanges || !n.SkipWhenDestroying {
		t.Fatalf("declared values did not win: %+v", n)
	}
}

func TestInsert_UnknownDependency(t *testing.T) {
	root := mkStackDirs(t, "stack1")
	g := NewGraph(root)

	err := g.Insert("./stack1", []string{"./missing"}, DefaultConfig())
	if err == nil {
		t.Fatalf("expected unknown dependency error")
	}
	var unknown *UnknownDependencyError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T", err)
	}
	if unknown.Stack != "./stack1" || unknown.Dependency != "./missing" {
		t.Fatalf("error ids = %q/%q", unknown.Stack, unknown.Dependency)
	}
}

func TestInsert_RepeatedCallAppendsEdges(t *testing.T) {
	root := mkStackDirs(t, "stack1", "stack2", "stack3")
	g := NewGraph(root)

	if err := g.Insert("./stack1", []string{"./stack2"}, DefaultConfig()); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := g.Insert("./stack1", []string{"./stack3"}, DefaultConfig()); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	n := g.Node("./stack1")
	if len(n.DependsOn) != 2 {
		t.Fatalf("edges=%d, want 2", len(n.DependsOn))
	}
	if n.DependsOn[0].ID != "./stack2" || n.DependsOn[1].ID != "./stack3" {
		t.Fatalf("edge order = %s, %s", n.DependsOn[0].ID, n.DependsOn[1].ID)
	}
}

func TestInsert_DuplicateEdgeCollapsed(t *testing.T) {
	root := mkStackDirs(t, "stack1", "stack2")
	g := NewGraph(root)

	if err := g.Insert("./stack1", []string{"./stack2", "./stack2"}, DefaultConfig()); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := g.Insert("./stack1", []string{"./stack2"}, DefaultConfig()); err != nil {
		t.Fatalf("re-insert: %v", err)
	}
	if n := g.Node("./stack1"); len(n.DependsOn) != 1 {
		t.Fatalf("edges=%d, want deduplicated single edge", len(n.DependsOn))
	}
}

func TestInsert_InsertionOrderPreserved(t *testing.T) {
	root := mkStackDirs(t, "b", "a", "c")
	g := NewGraph(root)

	for _, id := range []string{"./b", "./a", "./c"} {
		if err := g.Insert(id, nil, DefaultConfig()); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}
	got := g.NodesInOrder()
	want := []string{"./b", "./a", "./c"}
	for i, n := range got {
		if n.ID != want[i] {
			t.Fatalf("order[%d]=%s want %s", i, n.ID, want[i])
		}
	}
}
