package domain

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/adapter"
	adaptermocks "github.com/mouse-blink/handcheck/internal/adapter/mocks"
	"github.com/mouse-blink/handcheck/internal/config"
	m "github.com/mouse-blink/handcheck/internal/model"
)

const probeChecklist = `name: realtime
description: Realtime smoke test
steps:
  - name: health
    instruction: The runner checks the health endpoint first.
    question: Does the status page say healthy?
    required: true
    probe:
      type: http
      url: ${app_url}/health
      expect_status: 204
  - name: echo
    instruction: The runner round-trips a message over the socket.
    question: Did the message show up in the app log?
    probe:
      type: websocket
      url: ${ws_url}/ws/echo
      send: handcheck-ping
      timeout_seconds: 5
  - name: broken
    instruction: This page is expected to exist.
    question: Never asked when the probe fails?
    probe:
      type: http
      url: ${app_url}/missing
`

func newAppServer(t *testing.T) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/ws/echo", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			kind, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			if err := conn.WriteMessage(kind, data); err != nil {
				return
			}
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func writeChecklist(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "realtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func newChecklistWorkflow(t *testing.T, cfg config.Config, prompter adapter.Prompter) Workflow {
	t.Helper()

	ui, _ := newTestUI(t)

	return NewWorkflow(WorkflowDeps{
		Config:   cfg,
		UI:       ui,
		Prompter: prompter,
		Clock:    fixedClock(),
	})
}

func TestChecklistSuite_ProbesThenAsks(t *testing.T) {
	app := newAppServer(t)

	cfg := config.DefaultConfig()
	cfg.General.AppURL = app.URL + "/"

	prompter := adaptermocks.NewMockPrompter(t)
	prompter.EXPECT().Interactive().Return(true)
	prompter.EXPECT().Confirm(mock.Anything, mock.MatchedBy(func(q adapter.Question) bool {
		return q.Step == "health" || q.Step == "echo"
	})).Return(adapter.Verdict{Status: m.Pass}, nil).Times(2)

	dir := m.Path(t.TempDir())
	wf := newChecklistWorkflow(t, cfg, prompter)

	err := wf.Checklist(context.Background(), ChecklistArgs{RunArgs: RunArgs{Reports: dir}, Ref: writeChecklist(t, probeChecklist)})
	require.ErrorIs(t, err, ErrRunFailed)

	report := onlyReport(t, dir)
	assert.Equal(t, "checklist-realtime", report.TestID)
	assert.Equal(t, "Realtime smoke test", report.Target)

	health := stepByName(t, report, "health")
	assert.Equal(t, m.Pass, health.Status)
	assert.Equal(t, m.StepManual, health.Kind)
	assert.Contains(t, health.Note, "probe passed: GET "+app.URL+"/health")

	echo := stepByName(t, report, "echo")
	assert.Equal(t, m.Pass, echo.Status)
	assert.Contains(t, echo.Note, "ws://")

	broken := stepByName(t, report, "broken")
	assert.Equal(t, m.Fail, broken.Status)
	assert.Contains(t, broken.Error, "404")
}

func TestChecklistSuite_UnresolvedProbeStillAsks(t *testing.T) {
	prompter := adaptermocks.NewMockPrompter(t)
	prompter.EXPECT().Interactive().Return(true)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything).Return(adapter.Verdict{Status: m.Skip, Note: "not today"}, nil).Times(3)

	dir := m.Path(t.TempDir())
	wf := newChecklistWorkflow(t, config.DefaultConfig(), prompter)

	err := wf.Checklist(context.Background(), ChecklistArgs{RunArgs: RunArgs{Reports: dir, TestID: "rt"}, Ref: writeChecklist(t, probeChecklist)})
	require.NoError(t, err)

	report := onlyReport(t, dir)
	assert.Equal(t, "rt", report.TestID)
	assert.Equal(t, "probe needs app_url; not today", stepByName(t, report, "health").Note)
	assert.Equal(t, "probe needs ws_url; not today", stepByName(t, report, "echo").Note)
	assert.Equal(t, m.Skip, report.Summary.Verdict)
}

func TestChecklistSuite_BundledNonInteractive(t *testing.T) {
	dir := m.Path(t.TempDir())
	wf := newChecklistWorkflow(t, config.DefaultConfig(), adapter.NewAutoPrompter())

	require.NoError(t, wf.Checklist(context.Background(), ChecklistArgs{RunArgs: RunArgs{Reports: dir}, Ref: "payments"}))

	report := onlyReport(t, dir)
	assert.Equal(t, "checklist-payments", report.TestID)
	require.NotEmpty(t, report.Steps)

	for _, step := range report.Steps {
		assert.Equal(t, m.Skip, step.Status, step.Name)
	}
}

func TestChecklistSuite_LoadErrorWritesNoReport(t *testing.T) {
	dir := m.Path(t.TempDir())
	wf := newChecklistWorkflow(t, config.DefaultConfig(), adapter.NewAutoPrompter())

	err := wf.Checklist(context.Background(), ChecklistArgs{RunArgs: RunArgs{Reports: dir}, Ref: "no-such-checklist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown checklist")

	reports, err := adapter.NewReportStore().ListReports(dir)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestExpandProbeVars(t *testing.T) {
	got, missing := expandProbeVars("${ws_url}/ws?x=${app_url}", map[string]string{"app_url": "https://a.test", "ws_url": ""})
	assert.Equal(t, "/ws?x=https://a.test", got)
	assert.Equal(t, []string{"ws_url"}, missing)

	got, missing = expandProbeVars("${app_url}/health", map[string]string{"app_url": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000/health", got)
	assert.Empty(t, missing)
}

func TestProbeVars_DerivesWebSocketURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.AppURL = "https://app.example.com/"

	w := NewWorkflow(WorkflowDeps{Config: cfg}).(*workflow)
	assert.Equal(t, map[string]string{"app_url": "https://app.example.com", "ws_url": "wss://app.example.com"}, w.probeVars())
}
