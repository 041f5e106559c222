package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func TestLocalChecklistStore_Bundled(t *testing.T) {
	s := NewChecklistStore()

	assert.Equal(t,
		[]string{"invitations", "payments", "sessions", "two-factor", "uploads", "websocket"},
		s.Bundled())

	for _, name := range s.Bundled() {
		cl, err := s.Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, cl.Name)
		assert.NotEmpty(t, cl.Steps)
	}

	ws, err := s.Load("websocket")
	require.NoError(t, err)
	require.NotNil(t, ws.Steps[0].Probe)
	assert.Equal(t, m.ProbeWebSocket, ws.Steps[0].Probe.Type)
	assert.True(t, ws.Steps[0].Required)
}

func TestLocalChecklistStore_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: custom
steps:
  - name: one
    question: Works?
`), 0o600))

	cl, err := NewChecklistStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cl.Name)
	assert.Len(t, cl.Steps, 1)
}

func TestLocalChecklistStore_Unknown(t *testing.T) {
	_, err := NewChecklistStore().Load("does-not-exist")
	require.ErrorContains(t, err, "unknown checklist")
	require.ErrorContains(t, err, "payments")
}

func TestParseChecklist_Validation(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"missing name": {
			yaml: "steps:\n  - name: a\n    question: q\n",
			want: "name is required",
		},
		"no steps": {
			yaml: "name: x\n",
			want: "at least one step",
		},
		"duplicate step": {
			yaml: "name: x\nsteps:\n  - name: a\n    question: q\n  - name: a\n    question: q\n",
			want: "duplicated",
		},
		"missing question": {
			yaml: "name: x\nsteps:\n  - name: a\n",
			want: "question is required",
		},
		"bad probe": {
			yaml: "name: x\nsteps:\n  - name: a\n    question: q\n    probe:\n      type: ftp\n",
			want: "must be http or websocket",
		},
		"unknown field": {
			yaml: "name: x\nsteps:\n  - name: a\n    question: q\n    probe:\n      type: http\n      uri: http://x\n",
			want: "decode checklist",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChecklist([]byte(tc.yaml))
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLocalChecklistStore_ExampleChecklist(t *testing.T) {
	cl, err := NewChecklistStore().Load(filepath.Join("..", "..", "examples", "checklists", "checkout.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "checkout", cl.Name)
	require.NotNil(t, cl.Steps[0].Probe)
	assert.Equal(t, m.ProbeHTTP, cl.Steps[0].Probe.Type)
	assert.Equal(t, 200, cl.Steps[0].Probe.ExpectStatus)
}
