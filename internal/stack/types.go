// File: internal/stack/types.go
// Brief: Stack configuration and plan output types.

package stack

// RunnerLabel names the CI compute class a stack's job runs on.
type RunnerLabel string

const (
	RunnerUbuntuLatest RunnerLabel = "ubuntu-latest"
	RunnerSelfHosted   RunnerLabel = "self-hosted"
)

// IsValid reports whether the label is one of the accepted values.
func (l RunnerLabel) IsValid() bool {
	switch l {
	case RunnerUbuntuLatest, RunnerSelfHosted:
		return true
	default:
		return false
	}
}

// Config is a stack's validated, defaulted execution metadata.
type Config struct {
	RunnerLabel        RunnerLabel
	PlannedChanges     bool
	SkipWhenDestroying bool
}

// DefaultConfig is the metadata a stack carries until its own
// dependencies.json is processed.
func DefaultConfig() Config {
	return Config{
		RunnerLabel:        RunnerUbuntuLatest,
		PlannedChanges:     true,
		SkipWhenDestroying: false,
	}
}

// Node is one stack in the dependency graph.
type Node struct {
	ID                 string
	RunnerLabel        RunnerLabel
	PlannedChanges     bool
	SkipWhenDestroying bool

	// HasBackingDir is computed once at creation and never recomputed.
	HasBackingDir bool

	// DependsOn holds the stacks this node must be applied after,
	// in declaration order.
	DependsOn []*Node
}

// Record is one entry of the serialized plan.
type Record struct {
	Directory          string `json:"directory"`
	RunnerLabel        string `json:"runner_label"`
	PlannedChanges     bool   `json:"planned_changes"`
	Order              int    `json:"order"`
	SkipWhenDestroying bool   `json:"skip_when_destroying"`
}

// Records renders an ordered node list with 1-based positions.
func Records(nodes []*Node) []Record {
	out := make([]Record, 0, len(nodes))
	for i, n := range nodes {
		out = append(out, Record{
			Directory:          n.ID,
			RunnerLabel:        string(n.RunnerLabel),
			PlannedChanges:     n.PlannedChanges,
			Order:              i + 1,
			SkipWhenDestroying: n.SkipWhenDestroying,
		})
	}
	return out
}
