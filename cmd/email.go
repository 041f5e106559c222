package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/domain"
)

var emailTemplateFlag string

// emailCmd represents the email command.
var emailCmd = newEmailCmd()

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email <recipient>",
		Short: "Send a templated email and confirm delivery and rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Email(cmd.Context(), domain.EmailArgs{
				RunArgs:   runArgs(),
				Recipient: args[0],
				Template:  emailTemplateFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&emailTemplateFlag, "template", "t", domain.DefaultEmailTemplate, "email template to render")

	return cmd
}

func init() {
	rootCmd.AddCommand(emailCmd)
}
