package adapter

import (
	"os"

	"github.com/spf13/cobra"
)

// NewPrompter picks the Prompter for the current session.
// When interactive is false every manual step is skipped without asking.
// When useTTY is true it returns a HuhPrompter (terminal forms).
// Otherwise it returns a LinePrompter over the command's streams.
func NewPrompter(cmd *cobra.Command, useTTY, interactive bool) Prompter {
	if !interactive {
		return NewAutoPrompter()
	}

	if useTTY {
		return NewHuhPrompter(os.Getenv("ACCESSIBLE") != "")
	}

	return NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

// compile-time interface checks
var (
	_ Prompter    = (*LinePrompter)(nil)
	_ Prompter    = (*HuhPrompter)(nil)
	_ Prompter    = (*AutoPrompter)(nil)
	_ ReportStore = (*LocalReportStore)(nil)
)
