package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/neuron-cli/neuron/internal/app"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Neuron version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayVersionInformation(cmd.OutOrStdout())
			return nil
		},
	}
}

func displayVersionInformation(out io.Writer) {
	fmt.Fprintf(out, "Neuron version %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
}

func newModelsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			listModels(cmd.OutOrStdout(), cfg.ModelOrDefault())
			return nil
		},
	}
}

func listModels(out io.Writer, active string) {
	fmt.Fprintln(out, "Available models:")
	listed := false
	for _, model := range domain.AvailableModels {
		marker := " "
		if model == active {
			marker = "*"
			listed = true
		}
		fmt.Fprintf(out, "%s %s\n", marker, model)
	}
	if !listed {
		fmt.Fprintf(out, "* %s (active, not in list)\n", active)
	}
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			// Display report even if there were errors
			NewRenderer(cmd.OutOrStdout()).DoctorReport(report)
			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			if report.HasErrors() {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
