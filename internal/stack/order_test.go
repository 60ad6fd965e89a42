package stack

import "testing"

func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func fixtureGraph(t *testing.T) *Graph {
	t.Helper()
	root := mkStackDirs(t, "stack1", "stack2", "stack3", "stack4")
	g := NewGraph(root)
	insertAll(t, g, map[string][]string{
		"./stack1": {"./stack3"},
		"./stack2": {"./stack1"},
		"./stack3": {"./stack4"},
		"./stack4": nil,
	}, []string{"./stack1", "./stack2", "./stack3", "./stack4"})
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return g
}

func TestOrder_DependenciesFirst(t *testing.T) {
	g := fixtureGraph(t)
	got := ids(g.Order(false))
	want := []string{"./stack4", "./stack3", "./stack1", "./stack2"}
	if len(got) != len(want) {
		t.Fatalf("order=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v want=%v", got, want)
		}
	}
}

func TestOrder_ReverseIsExactInverse(t *testing.T) {
	g := fixtureGraph(t)
	forward := ids(g.Order(false))
	reversed := ids(g.Order(true))
	if len(forward) != len(reversed) {
		t.Fatalf("length mismatch: %v vs %v", forward, reversed)
	}
	for i := range forward {
		if forward[i] != reversed[len(reversed)-1-i] {
			t.Fatalf("reverse=%v is not the inverse of forward=%v", reversed, forward)
		}
	}
}

func TestOrder_EveryEdgeRespected(t *testing.T) {
	root := mkStackDirs(t, "a", "b", "c", "d", "e")
	g := NewGraph(root)
	decls := map[string][]string{
		"./a": {"./c", "./d"},
		"./b": {"./a"},
		"./c": {"./e"},
		"./d": {"./e"},
		"./e": nil,
	}
	insertAll(t, g, decls, []string{"./a", "./b", "./c", "./d", "./e"})
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	got := ids(g.Order(false))
	if len(got) != 5 {
		t.Fatalf("order=%v, want all 5 nodes exactly once", got)
	}
	pos := map[string]int{}
	for i, id := range got {
		if _, dup := pos[id]; dup {
			t.Fatalf("%s appears twice in %v", id, got)
		}
		pos[id] = i
	}
	for from, deps := range decls {
		for _, to := range deps {
			if pos[to] >= pos[from] {
				t.Fatalf("%s depends on %s but order=%v", from, to, got)
			}
		}
	}
}

// Unrelated stacks keep their first-insertion relative order.
func TestOrder_UnrelatedNodesKeepInsertionOrder(t *testing.T) {
	root := mkStackDirs(t, "z", "m", "a")
	g := NewGraph(root)
	insertAll(t, g, map[string][]string{
		"./z": nil,
		"./m": nil,
		"./a": nil,
	}, []string{"./z", "./m", "./a"})

	got := ids(g.Order(false))
	want := []string{"./z", "./m", "./a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v want=%v", got, want)
		}
	}
}

func TestRecords_OneBasedPositions(t *testing.T) {
	g := fixtureGraph(t)
	records := Records(g.Order(false))
	if len(records) != 4 {
		t.Fatalf("records=%d", len(records))
	}
	for i, r := range records {
		if r.Order != i+1 {
			t.Fatalf("records[%d].Order=%d", i, r.Order)
		}
	}
	first := records[0]
	if first.Directory != "./stack4" || first.RunnerLabel != string(RunnerUbuntuLatest) || !first.PlannedChanges || first.SkipWhenDestroying {
		t.Fatalf("records[0]=%+v", first)
	}
}
