package app

import (
	"context"
	"fmt"

	"golang.org/x/term"

	"github.com/neuron-cli/neuron/internal/application/doctor"
	"github.com/neuron-cli/neuron/internal/application/mediator"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/infrastructure/ai"
	"github.com/neuron-cli/neuron/internal/infrastructure/config"
	"github.com/neuron-cli/neuron/internal/infrastructure/executor"
	"github.com/neuron-cli/neuron/internal/infrastructure/security"
	"github.com/neuron-cli/neuron/internal/infrastructure/shell"
	"github.com/neuron-cli/neuron/internal/pkg/logger"
	"github.com/neuron-cli/neuron/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// The inference client is not part of it: it is built per run, after the
// configuration has been resolved, so a missing key fails before any request.
type Container struct {
	ConfigLoader  *config.FileLoader
	Logger        *logger.StdLogger
	Classifier    *security.Classifier
	Inspector     *shell.Inspector
	DoctorService *doctor.Service

	// InferenceOptions are appended when the inference client is built.
	InferenceOptions []ai.Option
	// StdinFD is checked by the doctor's interactive-terminal probe.
	StdinFD int
}

// BuildContainer constructs the dependency graph.
func BuildContainer(verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	cfgLoader := config.NewFileLoader("")

	classifier, err := security.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("load denylist: %w", err)
	}

	c := &Container{
		ConfigLoader: cfgLoader,
		Logger:       log,
		Classifier:   classifier,
		Inspector:    shell.NewInspector(),
		StdinFD:      0,
	}
	c.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		Classifier:     classifier,
		Interactive:    func() bool { return term.IsTerminal(c.StdinFD) },
	}
	return c, nil
}

// NewMediator resolves the configuration and assembles a mediator around the
// given terminal adapters. It fails with domain.ErrMissingAPIKey when no key
// is configured.
func (c *Container) NewMediator(ctx context.Context, presenter ports.Presenter, prompter ports.ConfirmationPrompter) (*mediator.Service, domain.Config, error) {
	cfg, err := c.ConfigLoader.Load(ctx)
	if err != nil {
		return nil, domain.Config{}, err
	}

	opts := append([]ai.Option{ai.WithLogger(c.Logger)}, c.InferenceOptions...)
	client, err := ai.NewClient(cfg.Credential(), opts...)
	if err != nil {
		return nil, cfg, err
	}

	return &mediator.Service{
		Inference:  client,
		Classifier: c.Classifier,
		Inspector:  c.Inspector,
		Executor:   executor.NewLocalExecutor(cfg.GetExecutionShell()),
		Prompter:   prompter,
		Presenter:  presenter,
		Logger:     c.Logger,
	}, cfg, nil
}
