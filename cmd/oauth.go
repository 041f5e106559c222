package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/handcheck/internal/domain"
)

// oauthCmd represents the oauth command.
var oauthCmd = newOAuthCmd()

func newOAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oauth <provider>",
		Short: "Run the OAuth authorization code flow against a provider",
		Long: `Checks the provider configuration and connectivity, opens the consent
screen in the browser, waits for the redirect on the local callback server,
exchanges the code (PKCE S256) and asks you to confirm what the browser showed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.OAuth(cmd.Context(), domain.OAuthArgs{
				RunArgs:  runArgs(),
				Provider: args[0],
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(oauthCmd)
}
