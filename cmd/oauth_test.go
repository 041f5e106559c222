package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/domain"
)

func TestOAuthCmd(t *testing.T) {
	t.Run("passes provider through", func(t *testing.T) {
		mockWorkflow := withMockWorkflow(t)
		mockWorkflow.On("OAuth", mock.Anything, mock.MatchedBy(func(args domain.OAuthArgs) bool {
			return args.Provider == "microsoft"
		})).Return(nil)

		_, err := execute(t, newOAuthCmd(), "oauth", "microsoft")
		require.NoError(t, err)
	})

	t.Run("requires provider", func(t *testing.T) {
		withMockWorkflow(t)

		_, err := execute(t, newOAuthCmd(), "oauth")
		require.Error(t, err)
	})
}
