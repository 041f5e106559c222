// Package cmd provides the root command and CLI setup for handcheck.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/adapter"
	"github.com/mouse-blink/handcheck/internal/config"
	"github.com/mouse-blink/handcheck/internal/controller"
	"github.com/mouse-blink/handcheck/internal/domain"
	"github.com/mouse-blink/handcheck/internal/logging"
	m "github.com/mouse-blink/handcheck/internal/model"
)

var workflow domain.Workflow
var cfg = config.DefaultConfig()
var logger = logging.Discard()

var configFlag string
var reportsFlag string
var logLevelFlag string
var nonInteractiveFlag bool
var testIDFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handcheck",
		Short: "Human-in-the-loop test runner",
		Long: `Handcheck drives flows that cannot be fully automated (OAuth consent,
transactional email, manual checklists), asks a person to confirm what they
see, and writes a timestamped JSON report for every run.

Examples:
  handcheck oauth google
  handcheck email qa@example.com --template password-reset
  handcheck checklist payments
  handcheck list`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "project config file (default .handcheck.toml)")
	cmd.PersistentFlags().StringVarP(&reportsFlag, "reports", "o", ".handcheck-reports", "directory reports are written to and read from")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&nonInteractiveFlag, "non-interactive", false, "never prompt; manual steps are recorded as skip")
	cmd.PersistentFlags().StringVar(&testIDFlag, "test-id", "", "override the test id used in the report file name")

	return cmd
}

// setup loads configuration and builds the workflow unless one was injected.
func setup(cmd *cobra.Command, _ []string) error {
	overrides := map[string]any{}

	flags := cmd.Flags()
	if flags.Changed("reports") {
		overrides["general.reports_dir"] = reportsFlag
	}

	if flags.Changed("log-level") {
		overrides["general.log_level"] = logLevelFlag
	}

	if flags.Changed("non-interactive") {
		overrides["general.non_interactive"] = nonInteractiveFlag
	}

	loaded, err := config.Load(config.LoadOptions{ConfigPath: configFlag, FlagOverrides: overrides})
	if err != nil {
		return err
	}

	cfg = loaded
	logger = logging.New(logging.Options{
		Level:  cfg.General.LogLevel,
		Output: cmd.ErrOrStderr(),
		Prefix: "handcheck",
	})

	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, logger)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, cfg config.Config, logger *log.Logger) domain.Workflow {
	useTTY := controller.IsTTY(os.Stdout)

	return domain.NewWorkflow(domain.WorkflowDeps{
		Config:   cfg,
		UI:       controller.NewUI(cmd, useTTY),
		Prompter: adapter.NewPrompter(cmd, useTTY && controller.IsTTY(os.Stdin), !cfg.General.NonInteractive),
		Logger:   logger,
	})
}

func runArgs() domain.RunArgs {
	return domain.RunArgs{
		Reports: m.Path(cfg.General.ReportsDir),
		TestID:  testIDFlag,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
