// Package mediator drives a request from prompt to executed command.
//
// The state machine is:
//
//	Idle -> Generating -> Generated -> SafetyCheck -> (AwaitingConfirmation | Ready) -> Executing -> Done
//
// with Explaining reachable only from AwaitingConfirmation. Explain-mode
// requests go Idle -> Generating -> Done. Exactly one inference call is in
// flight at a time and every step blocks.
package mediator

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/neuron-cli/neuron/internal/application/prompt"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

// Questions shown to the operator.
const (
	ConfirmQuestion   = "Execute this command? [y/N/e(xplain)]: "
	ReconfirmQuestion = "Still want to execute? [y/N]: "
)

// Exit statuses of the mediator itself.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Service orchestrates the generate/explain lifecycle end-to-end.
type Service struct {
	Inference  ports.InferenceClient
	Classifier ports.SafetyClassifier
	Inspector  ports.CommandInspector
	Executor   ports.CommandExecutor
	Prompter   ports.ConfirmationPrompter
	Presenter  ports.Presenter
	Logger     ports.Logger
}

// run tracks one invocation.
type run struct {
	id      string
	outcome domain.Outcome
}

func (r *run) enter(state domain.State) {
	r.outcome.Trail = append(r.outcome.Trail, state)
}

func (r *run) done(exitCode int) domain.Outcome {
	r.enter(domain.StateDone)
	r.outcome.ExitCode = exitCode
	return r.outcome
}

// Run processes a single request. The returned error is reserved for a
// miswired Service; pipeline failures are reported through Outcome.ExitCode.
func (s *Service) Run(ctx context.Context, req domain.RunRequest) (domain.Outcome, error) {
	if s.Inference == nil || s.Presenter == nil || s.Logger == nil {
		return domain.Outcome{ExitCode: ExitFailure}, errors.New("mediator.Service dependencies not satisfied")
	}
	if req.Mode == domain.ModeGenerateCommand && (s.Classifier == nil || s.Executor == nil || s.Prompter == nil) {
		return domain.Outcome{ExitCode: ExitFailure}, errors.New("mediator.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	r := &run{id: uuid.NewString()}
	r.enter(domain.StateIdle)

	s.Logger.Info("run started", map[string]interface{}{
		"run_id":     r.id,
		"mode":       req.Mode.String(),
		"unattended": req.Unattended,
		"model":      s.Inference.Model(),
	})

	if req.Mode == domain.ModeExplain {
		return s.explain(ctx, r, req), nil
	}
	return s.generate(ctx, r, req), nil
}

func (s *Service) explain(ctx context.Context, r *run, req domain.RunRequest) domain.Outcome {
	r.enter(domain.StateGenerating)
	s.Presenter.Thinking(domain.ModeExplain)

	text, err := s.infer(ctx, r, req.Prompt, domain.ModeExplain)
	if err != nil {
		s.Presenter.InferenceFailed(domain.ModeExplain, err)
		r.outcome.Err = err
		return r.done(ExitFailure)
	}

	r.outcome.Text = text
	s.Presenter.Answer(text)
	return r.done(ExitOK)
}

func (s *Service) generate(ctx context.Context, r *run, req domain.RunRequest) domain.Outcome {
	r.enter(domain.StateGenerating)
	s.Presenter.Thinking(domain.ModeGenerateCommand)

	command, err := s.infer(ctx, r, req.Prompt, domain.ModeGenerateCommand)
	if err != nil {
		s.Presenter.InferenceFailed(domain.ModeGenerateCommand, err)
		r.outcome.Err = err
		return r.done(ExitFailure)
	}

	r.enter(domain.StateGenerated)
	r.outcome.Command = command
	s.Presenter.Command(command, s.Inspector != nil && s.Inspector.ChainsOperations(command))

	r.enter(domain.StateSafetyCheck)
	verdict := s.Classifier.Classify(command)
	r.outcome.Verdict = verdict
	s.Logger.Info("safety check", map[string]interface{}{
		"run_id":    r.id,
		"dangerous": verdict.Dangerous,
		"pattern":   verdict.Pattern,
	})

	if req.Unattended && verdict.Safe() {
		r.enter(domain.StateReady)
		return s.execute(ctx, r, command)
	}

	if !s.confirm(ctx, r, command, verdict) {
		r.outcome.Cancelled = true
		s.Presenter.Cancelled()
		return r.done(ExitOK)
	}

	r.enter(domain.StateReady)
	return s.execute(ctx, r, command)
}

// confirm runs AwaitingConfirmation (and Explaining when asked for) and
// reports whether the operator approved the command.
func (s *Service) confirm(ctx context.Context, r *run, command string, verdict domain.SafetyVerdict) bool {
	r.enter(domain.StateAwaitingConfirmation)
	if verdict.Dangerous {
		s.Presenter.DangerWarning(verdict)
	}

	answer := s.ask(r, ConfirmQuestion)
	if isExplainRequest(answer) {
		r.enter(domain.StateExplaining)
		explanation, err := s.infer(ctx, r, domain.ExplainCommandPrefix+command, domain.ModeExplain)
		if err != nil {
			s.Presenter.ExplanationUnavailable()
		} else {
			s.Presenter.Explanation(explanation)
		}

		r.enter(domain.StateAwaitingConfirmation)
		answer = s.ask(r, ReconfirmQuestion)
	}
	return isAffirmative(answer)
}

// ask reads one line. A read failure (closed stdin) counts as an empty answer.
func (s *Service) ask(r *run, question string) string {
	answer, err := s.Prompter.Ask(question)
	if err != nil {
		s.Logger.Warn("reading confirmation failed", map[string]interface{}{
			"run_id": r.id,
			"error":  err.Error(),
		})
		return ""
	}
	return answer
}

func (s *Service) execute(ctx context.Context, r *run, command string) domain.Outcome {
	r.enter(domain.StateExecuting)
	s.Presenter.Executing()

	result, err := s.Executor.Execute(ctx, command)
	if err != nil {
		s.Logger.Error("command could not be started", err, map[string]interface{}{"run_id": r.id})
		if result.Err == nil {
			result.Err = err
		}
	}
	s.Logger.Info("command finished", map[string]interface{}{
		"run_id":      r.id,
		"exit_code":   result.ExitCode,
		"duration_ms": result.Duration.Milliseconds(),
	})

	r.outcome.Execution = &result
	s.Presenter.ExecutionFinished(result)
	// the command's own failure is reported, not propagated
	return r.done(ExitOK)
}

// infer builds the prompt, calls the completion service and trims edge
// whitespace. Whitespace-only content counts as an empty response.
func (s *Service) infer(ctx context.Context, r *run, text string, mode domain.OperatingMode) (string, error) {
	req := prompt.Request(s.Inference.Model(), text, mode)
	content, err := s.Inference.Infer(ctx, req)
	if err != nil {
		s.Logger.Error("inference failed", err, map[string]interface{}{
			"run_id": r.id,
			"mode":   mode.String(),
		})
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", &domain.InferenceError{Kind: domain.KindEmptyResponse, Body: "(blank content)"}
	}
	return content, nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func isExplainRequest(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "e", "explain":
		return true
	default:
		return false
	}
}
