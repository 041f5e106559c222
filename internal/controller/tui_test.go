package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func TestTUI_StepLines(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	if err := tui.Start(WithRunMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer tui.Close()

	tui.DisplayRunStarted("email", "qa@example.com", 6)
	tui.DisplayStepStarted(4, "delivered", m.StepManual)
	tui.DisplayInstruction("Check the inbox", "Look for the welcome email")
	tui.DisplayStepCompleted(4, m.StepResult{Name: "delivered", Status: m.Fail, Error: "landed in spam"})

	output := buf.String()

	for _, want := range []string{"email", "qa@example.com", "(6 steps)", "delivered", "Check the inbox", "Look for the welcome email", "fail", "landed in spam"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_Wait_ReturnsFnError(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)
	boom := errors.New("boom")

	done := make(chan error, 1)

	go func() {
		done <- tui.Wait(context.Background(), "Waiting for callback", func(context.Context) error {
			time.Sleep(20 * time.Millisecond)
			return boom
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("Wait() error = %v, want boom", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() timed out")
	}
}

func TestTUI_DisplayReport(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)
	report := sampleReport("oauth-google", m.Fail, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	if err := tui.DisplayReport(report, "out/report.json"); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"oauth", "google", "run run-1 by qa on laptop", "state mismatch", "1 passed, 1 failed, 1 skipped of 3", "out/report.json"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayReports_RunMode(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	if err := tui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports(nil) error = %v", err)
	}

	if !strings.Contains(buf.String(), "No reports found") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := tui.DisplayReports([]m.Report{sampleReport("email-welcome", m.Pass, started)}); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	if !strings.Contains(buf.String(), "email-welcome") {
		t.Fatalf("output missing report line\noutput:\n%s", buf.String())
	}
}

func TestTUI_DisplayReports_BrowseModeReadsInput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, strings.NewReader("q"))

	if err := tui.Start(WithBrowseMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer tui.Close()

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	reports := []m.Report{
		sampleReport("oauth-github", m.Fail, started),
		sampleReport("email-welcome", m.Pass, started.Add(time.Hour)),
	}

	done := make(chan error, 1)
	go func() { done <- tui.DisplayReports(reports) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("DisplayReports() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("report browser did not quit on q")
	}

	if !strings.Contains(buf.String(), "handcheck reports") {
		t.Fatalf("browser never rendered\noutput:\n%s", buf.String())
	}
}

func TestTUI_DisplayProvidersAndChecklists(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf, nil)

	err := tui.DisplayProviders([]m.ProviderInfo{
		{Name: "gitlab", AuthURL: "https://gitlab.com/oauth/authorize", RedirectURL: "http://127.0.0.1:8765/callback", Scopes: []string{"read_user"}},
	})
	if err != nil {
		t.Fatalf("DisplayProviders() error = %v", err)
	}

	if err := tui.DisplayChecklists([]string{"sessions"}); err != nil {
		t.Fatalf("DisplayChecklists() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"gitlab", "client missing", "https://gitlab.com/oauth/authorize", "read_user", "sessions"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}
