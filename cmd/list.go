package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/domain"
	m "github.com/mouse-blink/handcheck/internal/model"
)

var listBrowseFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past reports",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(domain.ListArgs{
				Reports: m.Path(cfg.General.ReportsDir),
				Browse:  listBrowseFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&listBrowseFlag, "browse", "b", false, "browse reports interactively (terminal only)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
