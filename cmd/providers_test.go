package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvidersCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Providers").Return(errors.New("boom"))

	_, err := execute(t, newProvidersCmd(), "providers")
	require.EqualError(t, err, "boom")
}
