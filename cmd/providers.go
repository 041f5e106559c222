package cmd

import (
	"github.com/spf13/cobra"
)

// providersCmd represents the providers command.
var providersCmd = newProvidersCmd()

func newProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List configured OAuth providers",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Providers()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
