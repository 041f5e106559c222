package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/config"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long:  "Write the built-in defaults to .handcheck.toml (or the given path). Existing files are never overwritten.",
		Args:  cobra.MaximumNArgs(1),
		// the config being written may not exist or be valid yet
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path := config.ConfigPaths("", configFlag)
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
