package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/domain"
)

// checklistCmd represents the checklist command.
var checklistCmd = newChecklistCmd()

func newChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist [name|file]",
		Short: "Walk a manual checklist step by step",
		Long: `Walks a YAML checklist, running each step's probe before asking for a
verdict. A bundled name (payments, two-factor, websocket, invitations,
sessions, uploads) or a path to a YAML file is accepted. Without an argument
the bundled checklists are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return workflow.Checklists()
			}

			return workflow.Checklist(cmd.Context(), domain.ChecklistArgs{
				RunArgs: runArgs(),
				Ref:     args[0],
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}
