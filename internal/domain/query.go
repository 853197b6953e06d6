package domain

import "time"

// RunRequest captures one invocation originating from the CLI.
type RunRequest struct {
	Prompt string
	Mode   OperatingMode
	// Unattended skips confirmation for commands the classifier judges safe.
	Unattended bool
}

// ExecutionResult describes the host shell run of an approved command.
// The mediator only inspects the exit code; output goes straight to the terminal.
type ExecutionResult struct {
	ExitCode int
	Duration time.Duration
	// Err is set when the shell could not be started at all.
	Err error
}

// Succeeded reports a zero exit code with no spawn error.
func (r ExecutionResult) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Outcome is what the mediator reports back once it reaches Done.
type Outcome struct {
	// ExitCode is the mediator's own status: 1 only when inference failed.
	ExitCode int
	// Trail lists every state visited, Idle first and Done last.
	Trail     []State
	Command   string
	Verdict   SafetyVerdict
	Text      string
	Cancelled bool
	Execution *ExecutionResult
	Err       error
}

// Visited reports whether the mediator passed through state s.
func (o Outcome) Visited(s State) bool {
	for _, st := range o.Trail {
		if st == s {
			return true
		}
	}
	return false
}

// Executed reports whether the candidate command was handed to the shell.
func (o Outcome) Executed() bool {
	return o.Execution != nil
}
