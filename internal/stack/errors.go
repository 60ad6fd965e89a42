// File: internal/stack/errors.go
// Brief: Typed failures for graph construction and validation.

package stack

import (
	"fmt"
	"strings"
)

// SchemaError reports a dependencies.json that does not conform to the
// required document shape.
type SchemaError struct {
	Path   string
	Causes []string
	Err    error
}

func (e *SchemaError) Error() string {
	if len(e.Causes) > 0 {
		return fmt.Sprintf("%s failed to validate against the JSON schema: %s", e.Path, strings.Join(e.Causes, "; "))
	}
	return fmt.Sprintf("%s failed to validate against the JSON schema: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InvalidRunnerLabelError reports a runner-label outside the closed set.
type InvalidRunnerLabelError struct {
	Stack string
	Value string
}

func (e *InvalidRunnerLabelError) Error() string {
	return fmt.Sprintf("invalid runner-label %q in %s (expected %q or %q)",
		e.Value, e.Stack, RunnerUbuntuLatest, RunnerSelfHosted)
}

// UnknownDependencyError reports a declared dependency with no backing
// directory.
type UnknownDependencyError struct {
	Stack      string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("unknown dependency detected: non-existent %s found in %s/%s", e.Dependency, e.Stack, ConfigFileName)
}

// CycleError reports the edge that closed a dependency cycle.
type CycleError struct {
	From string
	To   string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular reference detected: %s -> %s", e.From, e.To)
}
