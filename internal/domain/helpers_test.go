package domain

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/handcheck/internal/adapter"
	"github.com/mouse-blink/handcheck/internal/controller"
	m "github.com/mouse-blink/handcheck/internal/model"
)

var fixedStart = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return fixedStart }
}

func newTestUI(t *testing.T) (controller.UI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return controller.NewSimpleUI(cmd), &buf
}

func linePrompter(input string) adapter.Prompter {
	return adapter.NewLinePrompter(bytes.NewBufferString(input), io.Discard)
}

func onlyReport(t *testing.T, dir m.Path) m.Report {
	t.Helper()

	reports, err := adapter.NewReportStore().ListReports(dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	return reports[0]
}

func stepByName(t *testing.T, report m.Report, name string) m.StepResult {
	t.Helper()

	for _, step := range report.Steps {
		if step.Name == name {
			return step
		}
	}

	t.Fatalf("report has no step %q: %+v", name, report.Steps)

	return m.StepResult{}
}

func statuses(report m.Report) map[string]m.Status {
	out := make(map[string]m.Status, len(report.Steps))
	for _, step := range report.Steps {
		out[step.Name] = step.Status
	}

	return out
}

// redirectBrowser plays the provider: it sends the browser straight back to
// the redirect URL with the given query.
type redirectBrowser struct {
	query  func(state string) url.Values
	err    error
	opened []string
}

func (b *redirectBrowser) Open(rawURL string) error {
	b.opened = append(b.opened, rawURL)

	if b.err != nil {
		return b.err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	q := u.Query()

	resp, err := http.Get(q.Get("redirect_uri") + "?" + b.query(q.Get("state")).Encode())
	if err != nil {
		return err
	}

	return resp.Body.Close()
}

func approve(code string) func(string) url.Values {
	return func(state string) url.Values {
		return url.Values{"code": {code}, "state": {state}}
	}
}
