// Package controller renders handcheck runs and reports for the operator.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode prepares the UI for a live run.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithBrowseMode prepares the UI for browsing past reports.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how runs and reports are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayRunStarted(suite, target string, steps int)
	DisplayStepStarted(index int, name string, kind m.StepKind)
	DisplayStepCompleted(index int, result m.StepResult)
	DisplayInstruction(title, body string)
	// Wait runs fn while telling the operator what the run is waiting for.
	Wait(ctx context.Context, message string, fn func(context.Context) error) error
	DisplayReport(report m.Report, path m.Path) error
	DisplayReports(reports []m.Report) error
	DisplayProviders(providers []m.ProviderInfo) error
	DisplayChecklists(names []string) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (lipgloss + Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
