package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/ports"
)

const (
	answerRuleWidth    = 60
	executionRuleWidth = 50
)

// styles groups the palette used by the renderer.
type styles struct {
	brand   lipgloss.Style
	heading lipgloss.Style
	command lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		brand:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		command: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		danger:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		info:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		faint:   r.NewStyle().Faint(true),
	}
}

// Renderer implements ports.Presenter on a terminal.
type Renderer struct {
	out   io.Writer
	style styles
	width int
}

// NewRenderer builds a renderer for out. Colors are dropped automatically
// when out is not a terminal.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{
		out:   out,
		style: newStyles(lipgloss.NewRenderer(out)),
		width: terminalWidth(out),
	}
}

// terminalWidth returns the column count of out, or 0 when unknown.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (r *Renderer) rule(width int) string {
	if r.width > 0 && r.width < width {
		width = r.width
	}
	return r.style.faint.Render(strings.Repeat("-", width))
}

func (r *Renderer) brand() string {
	return r.style.brand.Render("🧬 Neuron AI")
}

func (r *Renderer) Thinking(mode domain.OperatingMode) {
	status := "is thinking..."
	if mode == domain.ModeGenerateCommand {
		status = "is generating your command..."
	}
	fmt.Fprintf(r.out, "\n%s %s\n", r.brand(), r.style.faint.Render(status))
}

func (r *Renderer) InferenceFailed(_ domain.OperatingMode, err error) {
	fmt.Fprintf(r.out, "\n%s\n", r.style.danger.Render("❌ Failed to get response from Neuron AI"))
	if err == nil {
		return
	}
	fmt.Fprintln(r.out, r.style.faint.Render("   "+err.Error()))

	var inferr *domain.InferenceError
	if errors.As(err, &inferr) && inferr.Hint() != "" {
		fmt.Fprintln(r.out, r.style.faint.Render("💡 "+inferr.Hint()))
	}
}

func (r *Renderer) Command(command string, chained bool) {
	fmt.Fprintf(r.out, "\n%s %s\n\n", r.brand(), r.style.heading.Render("generated command:"))
	fmt.Fprintf(r.out, "%s\n\n", r.style.command.Render(command))
	if chained {
		fmt.Fprintln(r.out, r.style.faint.Render("💡 This command chains multiple operations"))
	}
}

func (r *Renderer) DangerWarning(verdict domain.SafetyVerdict) {
	fmt.Fprintf(r.out, "\n%s This command might be destructive or require elevated privileges.\n",
		r.style.danger.Render("⚠️  WARNING:"))
	if verdict.Pattern != "" {
		detail := fmt.Sprintf("   Matched %q", verdict.Pattern)
		if verdict.Category != "" {
			detail += " (" + verdict.Category + ")"
		}
		fmt.Fprintln(r.out, r.style.faint.Render(detail))
	}
	fmt.Fprintf(r.out, "%s\n\n", r.style.faint.Render("   Please review carefully before proceeding."))
}

func (r *Renderer) Explanation(text string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n\n", r.style.info.Render("📚 Command Explanation:"), text)
}

func (r *Renderer) ExplanationUnavailable() {
	fmt.Fprintf(r.out, "\n%s\nUnable to get explanation at this time.\n\n", r.style.info.Render("📚 Command Explanation:"))
}

func (r *Renderer) Answer(text string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n\n", r.rule(answerRuleWidth), text, r.rule(answerRuleWidth))
}

func (r *Renderer) Cancelled() {
	fmt.Fprintf(r.out, "\n%s\n", r.style.faint.Render("🚫 Command execution cancelled."))
}

func (r *Renderer) Executing() {
	fmt.Fprintf(r.out, "\n%s\n%s\n", r.style.success.Render("🚀 Executing..."), r.rule(executionRuleWidth))
}

func (r *Renderer) ExecutionFinished(result domain.ExecutionResult) {
	fmt.Fprintln(r.out, r.rule(executionRuleWidth))
	switch {
	case result.Err != nil:
		fmt.Fprintf(r.out, "%s %s\n", r.style.danger.Render("❌ Command could not be started"),
			r.style.faint.Render("("+result.Err.Error()+")"))
	case result.ExitCode != 0:
		fmt.Fprintf(r.out, "%s %s\n", r.style.danger.Render("❌ Command failed"),
			r.style.faint.Render(fmt.Sprintf("(exit code: %d)", result.ExitCode)))
		fmt.Fprintf(r.out, "\n%s Try asking Neuron: %s\n", r.style.warning.Render("💡 Tip:"),
			r.style.faint.Render(`"why did this command fail?"`))
	default:
		fmt.Fprintln(r.out, r.style.success.Render("✅ Command completed successfully!"))
	}
}

// DoctorReport prints one line per check.
func (r *Renderer) DoctorReport(report domain.HealthReport) {
	for _, check := range report.Checks {
		label := strings.ToUpper(string(check.Status))
		var status string
		switch check.Status {
		case domain.HealthOK:
			status = r.style.success.Render("[" + label + "]")
		case domain.HealthWarn:
			status = r.style.warning.Render("[" + label + "]")
		default:
			status = r.style.danger.Render("[" + label + "]")
		}
		fmt.Fprintf(r.out, "%s %s - %s\n", status, check.Name, check.Details)
	}
}

var _ ports.Presenter = (*Renderer)(nil)
