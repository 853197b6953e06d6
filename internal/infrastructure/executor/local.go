// Package executor runs approved commands in the host shell.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

// LocalExecutor hands the command string to the shell unchanged and waits for it.
// The child shares the terminal: its output is streamed, never captured.
type LocalExecutor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLocalExecutor builds a new executor, shell defaults to /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" {
		shell = domain.DefaultShell()
	}
	return &LocalExecutor{
		shell:  shell,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the child's stdout and stderr.
func (e *LocalExecutor) WithOutput(stdout, stderr io.Writer) *LocalExecutor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Shell returns the interpreter commands are run with.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Execute implements ports.CommandExecutor. A non-zero exit is reported in the
// result, not as an error; an error means the shell could not be started.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, commandFlag(e.shell), command)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{Duration: time.Since(start)}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	default:
		result.ExitCode = -1
		result.Err = err
		return result, err
	}
}

// commandFlag picks the "run this string" switch for the interpreter.
func commandFlag(shell string) string {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(shell), ".exe"))
	switch name {
	case "cmd":
		return "/C"
	case "powershell", "pwsh":
		return "-Command"
	default:
		return "-c"
	}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
