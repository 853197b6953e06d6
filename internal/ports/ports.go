// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The mediator depends only on these abstractions, so the
// completion service, the host shell and the operator's keyboard can each be
// replaced by a test double without touching orchestration logic.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., InferenceClient, ConfirmationPrompter)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/neuron-cli/neuron/internal/domain"
)

// ConfigProvider loads the latest configuration, with environment overrides applied.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// InferenceClient sends one structured prompt to the completion service and
// returns the generated text. Failures are *domain.InferenceError values.
type InferenceClient interface {
	Model() string
	Infer(context.Context, domain.InferenceRequest) (string, error)
}

// SafetyClassifier scans a candidate command for denylisted fragments.
// It is a heuristic speed bump, not a security boundary.
type SafetyClassifier interface {
	Classify(command string) domain.SafetyVerdict
}

// CommandInspector reports structural facts about a candidate command.
type CommandInspector interface {
	ChainsOperations(command string) bool
}

// CommandExecutor runs an approved command in the host shell and waits for it.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ConfirmationPrompter shows a question and blocks for one line of operator input.
type ConfirmationPrompter interface {
	Ask(question string) (string, error)
}

// Presenter renders pipeline progress and results for the operator.
type Presenter interface {
	Thinking(mode domain.OperatingMode)
	InferenceFailed(mode domain.OperatingMode, err error)
	Command(command string, chained bool)
	DangerWarning(verdict domain.SafetyVerdict)
	Explanation(text string)
	ExplanationUnavailable()
	Answer(text string)
	Cancelled()
	Executing()
	ExecutionFinished(result domain.ExecutionResult)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
