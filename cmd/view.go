package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/domain"
	m "github.com/mouse-blink/handcheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report-file|latest]",
		Short: "Show the steps of one report",
		Long:  "Show the step table of one report. Accepts a path, a file name inside the reports directory, or latest (the default).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := domain.LatestReport
			if len(args) == 1 {
				report = args[0]
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.General.ReportsDir), Report: report})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
