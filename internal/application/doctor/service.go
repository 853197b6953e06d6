package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Classifier     ports.SafetyClassifier
	// LookPath resolves the execution shell; defaults to exec.LookPath.
	LookPath func(string) (string, error)
	// Interactive reports whether confirmation prompts can reach an operator.
	Interactive func() bool
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded (format %s)", cfg.ConfigFormatVersion)))

	if cfg.HasAPIKey() {
		checks = append(checks, ok("API key", "configured"))
	} else {
		checks = append(checks, fail("API key", "missing: export "+domain.EnvAPIKey+"=your_key or run `neuron config set-key`"))
	}

	checks = append(checks, ok("Model", cfg.ModelOrDefault()))
	checks = append(checks, s.shellCheck(cfg.GetExecutionShell()))
	checks = append(checks, s.denylistCheck())

	if s.Interactive != nil {
		if s.Interactive() {
			checks = append(checks, ok("Terminal", "interactive; confirmations will be prompted"))
		} else {
			checks = append(checks, warn("Terminal", "stdin is not a terminal; confirmations read from piped input"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) shellCheck(shell string) domain.HealthCheck {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(shell)
	if err != nil {
		return fail("Execution shell", fmt.Sprintf("%s not found: %v", shell, err))
	}
	return ok("Execution shell", path)
}

func (s *Service) denylistCheck() domain.HealthCheck {
	if s.Classifier == nil {
		return warn("Denylist", "classifier not initialized")
	}
	if s.Classifier.Classify("sudo true").Safe() || s.Classifier.Classify("ls").Dangerous {
		return fail("Denylist", "classifier gave unexpected verdicts")
	}
	return ok("Denylist", "loaded")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
