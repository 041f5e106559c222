package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// TUI implements UI using lipgloss styled output and Bubble Tea for the
// parts of a run that wait on something outside the terminal.
type TUI struct {
	output io.Writer
	input  io.Reader
	mode   StartMode
}

// NewTUI creates a new TUI. input feeds the report browser; nil reads the
// terminal.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// DisplayRunStarted prints the run header.
func (t *TUI) DisplayRunStarted(suite, target string, steps int) {
	t.printf("%s %s %s\n\n",
		titleStyle.Render("handcheck "+suite),
		accentStyle.Render(target),
		dimStyle.Render(fmt.Sprintf("(%d steps)", steps)),
	)
}

// DisplayStepStarted prints the step being executed.
func (t *TUI) DisplayStepStarted(index int, name string, kind m.StepKind) {
	marker := "▸"
	if kind == m.StepManual {
		marker = "☛"
	}

	t.printf("%s %s %s\n", dimStyle.Render(fmt.Sprintf("%2d", index+1)), accentStyle.Render(marker), name)
}

// DisplayStepCompleted prints the verdict of a step.
func (t *TUI) DisplayStepCompleted(index int, result m.StepResult) {
	line := fmt.Sprintf("%s %s %s", dimStyle.Render(fmt.Sprintf("%2d", index+1)), statusBadge(result.Status), result.Name)
	if detail := stepDetail(result); detail != "" {
		line += " " + dimStyle.Render(detail)
	}

	t.printf("%s\n", line)
}

// DisplayInstruction prints something the operator must do in a bordered box.
func (t *TUI) DisplayInstruction(title, body string) {
	t.printf("%s\n", instructionStyle.Render(titleStyle.Render(title)+"\n"+body))
}

// Wait shows a spinner with the elapsed time until fn returns.
// Input is left alone so prompts that follow still own stdin.
func (t *TUI) Wait(ctx context.Context, message string, fn func(context.Context) error) error {
	program := tea.NewProgram(newWaitModel(message),
		tea.WithInput(nil),
		tea.WithOutput(t.output),
		tea.WithoutSignalHandler(),
	)

	done := make(chan error, 1)

	go func() {
		err := fn(ctx)
		done <- err

		program.Send(waitDoneMsg{err: err})
	}()

	if _, err := program.Run(); err != nil {
		t.printf("%s\n", message)
	}

	return <-done
}

// DisplayReport prints the steps and summary of a report.
func (t *TUI) DisplayReport(report m.Report, path m.Path) error {
	t.printf("\n%s\n", renderReportDetail(report, 0))

	if path != "" {
		t.printf("%s %s\n", dimStyle.Render("Report written to"), accentStyle.Render(string(path)))
	}

	return nil
}

// DisplayReports prints past reports. In browse mode it opens an interactive list.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		t.printf("%s\n", dimStyle.Render("No reports found"))
		return nil
	}

	if t.mode == ModeBrowse {
		options := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
		if t.input != nil {
			options = append(options, tea.WithInput(t.input))
		}

		_, err := tea.NewProgram(newReportListModel(reports), options...).Run()
		if err != nil {
			return fmt.Errorf("browse reports: %w", err)
		}

		return nil
	}

	for _, report := range reports {
		t.printf("%s\n", reportLine(report))
	}

	return nil
}

// DisplayProviders prints the configured OAuth providers.
func (t *TUI) DisplayProviders(providers []m.ProviderInfo) error {
	if len(providers) == 0 {
		t.printf("%s\n", dimStyle.Render("No OAuth providers configured"))
		return nil
	}

	for _, p := range providers {
		client := statusStyle(m.Fail).Render("client missing")
		if p.Configured {
			client = statusStyle(m.Pass).Render("client set")
		}

		t.printf("%s %s\n    %s\n    %s\n",
			titleStyle.Render(p.Name), client,
			dimStyle.Render("auth     ")+p.AuthURL,
			dimStyle.Render("redirect ")+p.RedirectURL,
		)

		if len(p.Scopes) > 0 {
			t.printf("    %s%s\n", dimStyle.Render("scopes   "), strings.Join(p.Scopes, " "))
		}
	}

	return nil
}

// DisplayChecklists prints the bundled checklist names.
func (t *TUI) DisplayChecklists(names []string) error {
	for _, name := range names {
		t.printf("%s %s\n", accentStyle.Render("•"), name)
	}

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func reportLine(report m.Report) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		dimStyle.Render(report.StartedAt.Local().Format(reportTimeFormat)),
		statusBadge(report.Summary.Verdict),
		report.TestID,
		dimStyle.Render(fmt.Sprintf("%d/%d/%d", report.Summary.Passed, report.Summary.Failed, report.Summary.Skipped)),
	)
}

// renderReportDetail renders the header, one line per step and the summary.
// A positive width truncates step details to fit.
func renderReportDetail(report m.Report, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", titleStyle.Render(report.Suite), accentStyle.Render(report.Target), dimStyle.Render(report.TestID))
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("run %s by %s on %s, started %s",
		report.RunID, report.Operator, report.Host, report.StartedAt.Local().Format(reportTimeFormat))))

	for i, step := range report.Steps {
		line := fmt.Sprintf("%2d %s %-16s", i+1, statusBadge(step.Status), step.Name)
		if detail := stepDetail(step); detail != "" {
			if width > 0 {
				detail = truncateToWidth(detail, width-lipgloss.Width(line)-1)
			}

			line += " " + dimStyle.Render(detail)
		}

		fmt.Fprintf(&b, "%s\n", line)
	}

	fmt.Fprintf(&b, "\nVerdict %s  %s",
		statusBadge(report.Summary.Verdict),
		dimStyle.Render(fmt.Sprintf("%d passed, %d failed, %d skipped of %d",
			report.Summary.Passed, report.Summary.Failed, report.Summary.Skipped, report.Summary.Total)),
	)

	return b.String()
}
