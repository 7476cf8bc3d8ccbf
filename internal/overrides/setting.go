// Package overrides turns configuration override records into merged
// dictionaries. Payloads are parsed strictly: only flat mappings of strings
// to strings or to lists of strings are accepted.
package overrides

import (
	"errors"
	"fmt"
	"strings"
)

// Recognised override labels, in normalised form.
const (
	LabelCommitTypes    = "commit_types"
	LabelExampleCommits = "example_commits"
	LabelTrainingData   = "training_data"
	LabelSlackURL       = "slack_url"
)

// Setting is one configuration override record. Default carries the
// payload; the other fields describe the record for integration manifests.
type Setting struct {
	Label       string `json:"label" mapstructure:"label" yaml:"label"`
	Type        string `json:"type,omitempty" mapstructure:"type" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" mapstructure:"description" yaml:"description,omitempty"`
	Default     string `json:"default" mapstructure:"default" yaml:"default"`
	Required    bool   `json:"required,omitempty" mapstructure:"required" yaml:"required,omitempty"`
}

// NormalizeLabel case-folds label and turns spaces and dashes into
// underscores, so "Commit Types" and "commit-types" both read as
// commit_types.
func NormalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(label)
}

// ErrInvalidPayload is wrapped by every parse failure.
var ErrInvalidPayload = errors.New("invalid override payload")

// ConfigError reports a malformed override payload.
type ConfigError struct {
	Label string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s setting: %v", e.Label, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
