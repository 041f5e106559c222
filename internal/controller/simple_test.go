package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func newSimpleUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_StepLines(t *testing.T) {
	ui, buf := newSimpleUI(t)

	ui.DisplayRunStarted("oauth", "google", 9)
	ui.DisplayStepStarted(0, "config", m.StepAuto)
	ui.DisplayStepCompleted(0, m.StepResult{Name: "config", Status: m.Pass})
	ui.DisplayStepCompleted(3, m.StepResult{Name: "open-browser", Status: m.Skip, Note: "open manually"})
	ui.DisplayStepCompleted(4, m.StepResult{Name: "callback", Status: m.Fail, Error: "timed out"})

	output := buf.String()

	for _, want := range []string{
		"Running oauth against google (9 steps)",
		"[1] config (auto)",
		"[1] config -> PASS",
		"[4] open-browser -> SKIP (open manually)",
		"[5] callback -> FAIL: timed out",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_Wait_RunsFn(t *testing.T) {
	ui, buf := newSimpleUI(t)
	boom := errors.New("boom")

	err := ui.Wait(context.Background(), "Waiting for callback", func(context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Wait() error = %v, want boom", err)
	}

	if !strings.Contains(buf.String(), "Waiting for callback") {
		t.Fatalf("output missing wait message\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayReport_PrintsTable(t *testing.T) {
	ui, buf := newSimpleUI(t)
	report := sampleReport("oauth-google", m.Fail, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	if err := ui.DisplayReport(report, "reports/oauth-google-20260301-100000.json"); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"consent-screen",
		"state mismatch",
		"manual confirmation unavailable",
		"VERDICT FAIL",
		"1/1/1",
		"Report written to reports/oauth-google-20260301-100000.json",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newSimpleUI(t)

	if err := ui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports(nil) error = %v", err)
	}

	if !strings.Contains(buf.String(), "No reports found") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}

	buf.Reset()

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	reports := []m.Report{
		sampleReport("oauth-google", m.Pass, started),
		sampleReport("oauth-github", m.Fail, started.Add(time.Hour)),
	}

	if err := ui.DisplayReports(reports); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"oauth-google", "oauth-github", "TOTAL REPORTS 2", "1 FAILED"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayProvidersAndChecklists(t *testing.T) {
	ui, buf := newSimpleUI(t)

	err := ui.DisplayProviders([]m.ProviderInfo{
		{Name: "github", AuthURL: "https://github.com/login/oauth/authorize", RedirectURL: "http://127.0.0.1:8765/callback", Scopes: []string{"read:user", "user:email"}},
		{Name: "google", AuthURL: "https://accounts.google.com/o/oauth2/auth", Configured: true},
	})
	if err != nil {
		t.Fatalf("DisplayProviders() error = %v", err)
	}

	if err := ui.DisplayChecklists([]string{"payments", "uploads"}); err != nil {
		t.Fatalf("DisplayChecklists() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"github", "missing", "google", "set", "read:user user:email", "payments\nuploads\n"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayProviders_Empty(t *testing.T) {
	ui, buf := newSimpleUI(t)

	if err := ui.DisplayProviders(nil); err != nil {
		t.Fatalf("DisplayProviders(nil) error = %v", err)
	}

	if !strings.Contains(buf.String(), "No OAuth providers configured") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}
}
