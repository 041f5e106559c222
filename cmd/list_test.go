package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/domain"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("List", mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Reports == "archive" && args.Browse
	})).Return(nil)

	_, err := execute(t, newListCmd(), "list", "--reports", "archive", "--browse")
	require.NoError(t, err)
}

func TestListCmd_RejectsArgs(t *testing.T) {
	withMockWorkflow(t)

	_, err := execute(t, newListCmd(), "list", "extra")
	require.Error(t, err)
}
