// File: internal/tfversion/constraint.go
// Brief: required_version extraction from terraform.tf.

package tfversion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var exactPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// RequiredVersion returns the required_version constraint string from
// the terraform block of the given file, or "" when the file carries
// none.
func RequiredVersion(path string) (string, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return "", fmt.Errorf("parse %s: %w", path, diags)
	}
	content, _, diags := f.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "terraform"}},
	})
	if diags.HasErrors() {
		return "", fmt.Errorf("read %s: %w", path, diags)
	}
	for _, block := range content.Blocks {
		attrs, _, diags := block.Body.PartialContent(&hcl.BodySchema{
			Attributes: []hcl.AttributeSchema{{Name: "required_version"}},
		})
		if diags.HasErrors() {
			return "", fmt.Errorf("read terraform block in %s: %w", path, diags)
		}
		attr, ok := attrs.Attributes["required_version"]
		if !ok {
			continue
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return "", fmt.Errorf("evaluate required_version in %s: %w", path, diags)
		}
		if val.Type() != cty.String {
			return "", fmt.Errorf("required_version in %s is not a string", path)
		}
		return val.AsString(), nil
	}
	return "", nil
}

// exactVersion reports whether the constraint pins one exact release,
// which can be answered without consulting any version feed.
func exactVersion(constraint string) (string, bool) {
	s := strings.TrimSpace(constraint)
	if strings.Contains(s, ",") {
		return "", false
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "="))
	if exactPattern.MatchString(s) {
		return s, true
	}
	return "", false
}
