package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/handcheck/internal/model"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayRunStarted prints the run header.
func (s *SimpleUI) DisplayRunStarted(suite, target string, steps int) {
	s.printf("Running %s against %s (%d steps)\n", suite, target, steps)
}

// DisplayStepStarted prints the step being executed.
func (s *SimpleUI) DisplayStepStarted(index int, name string, kind m.StepKind) {
	s.printf("[%d] %s (%s)\n", index+1, name, kind)
}

// DisplayStepCompleted prints the verdict of a step.
func (s *SimpleUI) DisplayStepCompleted(index int, result m.StepResult) {
	line := fmt.Sprintf("[%d] %s -> %s", index+1, result.Name, strings.ToUpper(result.Status.String()))
	if result.Error != "" {
		line += ": " + result.Error
	} else if result.Note != "" {
		line += " (" + result.Note + ")"
	}

	s.printf("%s\n", line)
}

// DisplayInstruction prints something the operator must do.
func (s *SimpleUI) DisplayInstruction(title, body string) {
	s.printf("\n%s:\n  %s\n\n", title, body)
}

// Wait prints the message and runs fn.
func (s *SimpleUI) Wait(ctx context.Context, message string, fn func(context.Context) error) error {
	s.printf("%s\n", message)

	return fn(ctx)
}

// DisplayReport prints the step table and summary of a report.
func (s *SimpleUI) DisplayReport(report m.Report, path m.Path) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Step", "Kind", "Status", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for i, step := range report.Steps {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			step.Name,
			string(step.Kind),
			step.Status.String(),
			stepDetail(step),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Verdict %s", report.Summary.Verdict),
		"",
		fmt.Sprintf("%d/%d/%d", report.Summary.Passed, report.Summary.Failed, report.Summary.Skipped),
		"pass/fail/skip",
	})

	table.Render()

	s.printf("\n%s %s (%s) started %s\n", report.Suite, report.Target, report.TestID, report.StartedAt.Local().Format(reportTimeFormat))
	s.printf("%s", tableBuffer.String())

	if path != "" {
		s.printf("Report written to %s\n", path)
	}

	return nil
}

// DisplayReports prints one row per past report.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Started", "Test", "Suite", "Target", "Verdict", "Pass", "Fail", "Skip"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0

	for _, report := range reports {
		if report.Summary.Verdict == m.Fail {
			failed++
		}

		table.Append([]string{
			report.StartedAt.Local().Format(reportTimeFormat),
			report.TestID,
			report.Suite,
			report.Target,
			report.Summary.Verdict.String(),
			fmt.Sprintf("%d", report.Summary.Passed),
			fmt.Sprintf("%d", report.Summary.Failed),
			fmt.Sprintf("%d", report.Summary.Skipped),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Reports %d", len(reports)),
		"", "", "",
		fmt.Sprintf("%d failed", failed),
		"", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayProviders prints the configured OAuth providers.
func (s *SimpleUI) DisplayProviders(providers []m.ProviderInfo) error {
	if len(providers) == 0 {
		s.printf("No OAuth providers configured\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Provider", "Client", "Auth URL", "Redirect", "Scopes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, p := range providers {
		client := "missing"
		if p.Configured {
			client = "set"
		}

		table.Append([]string{p.Name, client, p.AuthURL, p.RedirectURL, strings.Join(p.Scopes, " ")})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayChecklists prints the bundled checklist names.
func (s *SimpleUI) DisplayChecklists(names []string) error {
	for _, name := range names {
		s.printf("%s\n", name)
	}

	return nil
}

func stepDetail(step m.StepResult) string {
	if step.Error != "" {
		return step.Error
	}

	return step.Note
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
