// File: internal/tfversion/resolve.go
// Brief: Highest release satisfying a required_version constraint.

package tfversion

import (
	"context"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Resolve parses the terraform file at path and returns the highest
// candidate version satisfying its required_version constraint. An
// absent constraint or an empty satisfying set resolves to "" with a
// nil error; both are normal outcomes, not failures.
func Resolve(ctx context.Context, path string, src *Source) (string, error) {
	constraint, err := RequiredVersion(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(constraint) == "" {
		return "", nil
	}
	// An exact pin needs no feed round trip.
	if exact, ok := exactVersion(constraint); ok {
		return exact, nil
	}
	cons, err := goversion.NewConstraint(constraint)
	if err != nil {
		return "", fmt.Errorf("parse required_version %q: %w", constraint, err)
	}
	candidates, err := src.Versions(ctx)
	if err != nil {
		return "", err
	}
	var best *goversion.Version
	for _, v := range candidates {
		if !cons.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best == nil {
		return "", nil
	}
	return best.Original(), nil
}
