// Package domain defines core entities and value objects for neuron.
//
// The domain layer has no infrastructure dependencies: it describes what a
// request to the completion service looks like, how the generated command is
// judged, and what the mediator reports back to the CLI.
package domain

import (
	"fmt"
	"strings"
)

// OperatingMode selects the prompt template and the response-handling policy
// (output budget and determinism) for a single invocation.
type OperatingMode int

const (
	// ModeGenerateCommand asks the model for a shell command only.
	ModeGenerateCommand OperatingMode = iota
	// ModeExplain asks the model for a structured explanation.
	ModeExplain
)

// Generation parameters per mode. Commands are short and deterministic,
// explanations get more room and a little more variety.
const (
	GenerateMaxTokens   = 150
	GenerateTemperature = 0.1
	ExplainMaxTokens    = 500
	ExplainTemperature  = 0.3
)

// String returns the CLI name of the mode.
func (m OperatingMode) String() string {
	switch m {
	case ModeGenerateCommand:
		return "run"
	case ModeExplain:
		return "tell"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MaxTokens returns the output token budget for the mode.
func (m OperatingMode) MaxTokens() int {
	if m == ModeGenerateCommand {
		return GenerateMaxTokens
	}
	return ExplainMaxTokens
}

// Temperature returns the sampling temperature for the mode.
func (m OperatingMode) Temperature() float64 {
	if m == ModeGenerateCommand {
		return GenerateTemperature
	}
	return ExplainTemperature
}

// ParseMode maps the CLI names "run" and "tell" to a mode.
func ParseMode(value string) (OperatingMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "run":
		return ModeGenerateCommand, nil
	case "tell":
		return ModeExplain, nil
	default:
		return 0, fmt.Errorf("invalid mode: %s", value)
	}
}
