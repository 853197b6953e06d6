package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neuron-cli/neuron/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.ConfigFormatVersion != "" && cfg.ConfigFormatVersion != "1" {
		return fmt.Errorf("unsupported config_format_version %q", cfg.ConfigFormatVersion)
	}
	if cfg.Model != "" && strings.TrimSpace(cfg.Model) == "" {
		return errors.New("model must not be blank")
	}
	if strings.ContainsAny(cfg.Model, " \t\n") {
		return fmt.Errorf("model %q must not contain whitespace", cfg.Model)
	}
	if cfg.APIKey != strings.TrimSpace(cfg.APIKey) {
		return errors.New("api_key has leading or trailing whitespace")
	}
	if cfg.Execution.Shell != "" && strings.TrimSpace(cfg.Execution.Shell) == "" {
		return errors.New("execution.shell must not be blank")
	}
	return nil
}
