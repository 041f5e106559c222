package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/domain"
)

func TestChecklistCmd(t *testing.T) {
	t.Run("runs named checklist", func(t *testing.T) {
		mockWorkflow := withMockWorkflow(t)
		mockWorkflow.On("Checklist", mock.Anything, mock.MatchedBy(func(args domain.ChecklistArgs) bool {
			return args.Ref == "websocket" && args.Reports == "runs"
		})).Return(nil)

		_, err := execute(t, newChecklistCmd(), "checklist", "websocket", "-o", "runs")
		require.NoError(t, err)
	})

	t.Run("lists bundled checklists without argument", func(t *testing.T) {
		mockWorkflow := withMockWorkflow(t)
		mockWorkflow.On("Checklists").Return(nil)

		_, err := execute(t, newChecklistCmd(), "checklist")
		require.NoError(t, err)
	})
}
