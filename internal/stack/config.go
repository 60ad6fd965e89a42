// File: internal/stack/config.go
// Brief: Loading and schema validation of per-stack dependencies.json.

package stack

import (
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// ConfigFileName is the per-stack configuration document.
const ConfigFileName = "dependencies.json"

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Dependencies Schema",
  "type": "object",
  "properties": {
    "dependencies": {
      "type": "object",
      "properties": {
        "paths": {
          "type": "array",
          "items": {
            "type": "string"
          }
        }
      },
      "required": ["paths"]
    },
    "runner-label": {
      "type": "string"
    },
    "planned-changes": {
      "type": "boolean"
    },
    "skip_when_destroying": {
      "type": "boolean"
    }
  },
  "required": ["dependencies"]
}`

// rawConfig mirrors the dependencies.json document. Optional fields are
// pointers so an absent field is distinguishable from a zero value.
type rawConfig struct {
	Dependencies struct {
		Paths []string `json:"paths"`
	} `json:"dependencies"`
	RunnerLabel        *string `json:"runner-label"`
	PlannedChanges     *bool   `json:"planned-changes"`
	SkipWhenDestroying *bool   `json:"skip_when_destroying"`
}

// LoadConfig reads, validates, and defaults one stack's
// dependencies.json. The stack argument only names the offender in
// errors.
func LoadConfig(path, stack string) ([]string, Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Config{}, err
	}
	return parseConfig(raw, path, stack)
}

func parseConfig(raw []byte, path, stack string) ([]string, Config, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(configSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// Malformed JSON surfaces here rather than as schema results.
		return nil, Config{}, &SchemaError{Path: path, Err: err}
	}
	if !result.Valid() {
		causes := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			causes = append(causes, re.String())
		}
		return nil, Config{}, &SchemaError{Path: path, Causes: causes}
	}

	var rc rawConfig
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, Config{}, &SchemaError{Path: path, Err: err}
	}

	cfg := DefaultConfig()
	if rc.RunnerLabel != nil {
		label := RunnerLabel(*rc.RunnerLabel)
		if !label.IsValid() {
			return nil, Config{}, &InvalidRunnerLabelError{Stack: stack, Value: *rc.RunnerLabel}
		}
		cfg.RunnerLabel = label
	}
	if rc.PlannedChanges != nil {
		cfg.PlannedChanges = *rc.PlannedChanges
	}
	if rc.SkipWhenDestroying != nil {
		cfg.SkipWhenDestroying = *rc.SkipWhenDestroying
	}
	return rc.Dependencies.Paths, cfg, nil
}
