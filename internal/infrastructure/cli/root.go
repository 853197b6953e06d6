package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuron-cli/neuron/internal/app"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/infrastructure/ai"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// InferenceOptions customize the completion client (tests point it at a fake server).
	InferenceOptions []ai.Option
}

const rootLong = `🧬 Neuron AI - Your intelligent command-line assistant

Usage:
  neuron run "find large files"          # Generate & execute commands
  neuron run "install docker" --yes      # Auto-execute without confirmation
  neuron tell "explain git rebase"       # Get explanations

Legacy flag syntax:
  neuron --mode run --prompt "show disk usage" [--yes]
  neuron --mode tell --prompt "what is docker"

💡 Tip: Set your API key: export NEURON_API_KEY=your_key_here`

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.InferenceOptions = opts.InferenceOptions

	var (
		mode   string
		prompt string
		yes    bool
		debug  bool
	)

	root := &cobra.Command{
		Use:   "neuron",
		Short: "Neuron AI - natural language to shell commands",
		Long:  rootLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" || prompt == "" {
				return cmd.Help()
			}
			parsed, err := domain.ParseMode(mode)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid mode: %s\n", mode)
				return &ExitError{Code: 1}
			}
			return runPipeline(cmd, container, prompt, parsed, yes)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				container.Logger.SetVerbose(true)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)

	root.Flags().StringVarP(&mode, "mode", "m", "", "Operation mode: run or tell")
	root.Flags().StringVarP(&prompt, "prompt", "p", "", "Request in natural language")
	root.Flags().BoolVarP(&yes, "yes", "y", false, "Execute safe commands without confirmation")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging")

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newTellCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newModelsCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func newRunCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run <request...> [-y|--yes]",
		Short: "Generate a shell command and execute it after confirmation",
		// Words such as "-la" belong to the request, so flags are not parsed here.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, yes := joinPrompt(args)
			if text == "" || isHelpRequest(args) {
				return cmd.Help()
			}
			return runPipeline(cmd, container, text, domain.ModeGenerateCommand, yes)
		},
	}
}

func newTellCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "tell <question...>",
		Short:              "Explain a concept or command",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := joinPrompt(args)
			if text == "" || isHelpRequest(args) {
				return cmd.Help()
			}
			return runPipeline(cmd, container, text, domain.ModeExplain, false)
		},
	}
}

// joinPrompt joins every word with single spaces and removes -y/--yes,
// reporting whether either was present.
func joinPrompt(args []string) (string, bool) {
	words := make([]string, 0, len(args))
	yes := false
	for _, arg := range args {
		if arg == "-y" || arg == "--yes" {
			yes = true
			continue
		}
		words = append(words, arg)
	}
	return strings.Join(words, " "), yes
}

func isHelpRequest(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func runPipeline(cmd *cobra.Command, container *app.Container, text string, mode domain.OperatingMode, yes bool) error {
	ctx := cmd.Context()
	renderer := NewRenderer(cmd.OutOrStdout())
	prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	svc, cfg, err := container.NewMediator(ctx, renderer, prompter)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAPIKey) {
			return fmt.Errorf("%w: export %s=your_key or run `neuron config set-key <key>`", err, domain.EnvAPIKey)
		}
		return err
	}

	outcome, err := svc.Run(ctx, domain.RunRequest{
		Prompt:     text,
		Mode:       mode,
		Unattended: yes || cfg.ShouldAutoExecuteSafe(),
	})
	if err != nil {
		return err
	}
	if outcome.ExitCode != 0 {
		return &ExitError{Code: outcome.ExitCode}
	}
	return nil
}
