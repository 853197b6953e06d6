// Package security implements the command safety classifier.
//
// The classifier is a fast pre-filter: it looks for known-dangerous fragments
// as plain case-sensitive substrings. It does not parse the command, follow
// aliases, expand variables or see through quoting, so a command it calls
// safe can still be destructive. It exists to make the operator look twice,
// and provides no security guarantee.
package security

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neuron-cli/neuron/assets"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

// Pattern is one denylist entry.
type Pattern struct {
	Fragment string `yaml:"fragment"`
	Category string `yaml:"category"`
}

// DenylistFile is the YAML schema root.
type DenylistFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// Classifier implements the SafetyClassifier port.
type Classifier struct {
	patterns []Pattern
}

// NewClassifier loads the embedded denylist.
func NewClassifier() (*Classifier, error) {
	return NewClassifierFromYAML(assets.DenylistYAML)
}

// NewClassifierFromYAML builds a classifier from a denylist document.
// Order is preserved; it decides which fragment is reported on overlap.
func NewClassifierFromYAML(data []byte) (*Classifier, error) {
	var file DenylistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse denylist: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, errors.New("denylist has no patterns")
	}
	for i, p := range file.Patterns {
		// an empty fragment would match every command
		if p.Fragment == "" {
			return nil, fmt.Errorf("denylist pattern %d has an empty fragment", i)
		}
	}
	return &Classifier{patterns: file.Patterns}, nil
}

// Classify returns the first denylisted fragment found in command.
func (c *Classifier) Classify(command string) domain.SafetyVerdict {
	for _, p := range c.patterns {
		if strings.Contains(command, p.Fragment) {
			return domain.SafetyVerdict{Dangerous: true, Pattern: p.Fragment, Category: p.Category}
		}
	}
	return domain.SafetyVerdict{}
}

// Patterns returns a copy of the denylist in scan order.
func (c *Classifier) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

var _ ports.SafetyClassifier = (*Classifier)(nil)
