package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/config"
)

func TestInitCmd(t *testing.T) {
	withMockWorkflow(t)

	path := filepath.Join(t.TempDir(), "handcheck.toml")

	out, err := execute(t, newInitCmd(), "init", path)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "Wrote "+path))

	cfg, err := config.DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, ".handcheck-reports", cfg.General.ReportsDir)

	_, err = execute(t, newInitCmd(), "init", path)
	if err == nil {
		t.Fatalf("expected existing config to be left alone")
	}

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}
