package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestWaitModel_DoneQuits(t *testing.T) {
	model := newWaitModel("Waiting for callback")

	if view := model.View(); !strings.Contains(view, "Waiting for callback") {
		t.Fatalf("View() = %q, want message", view)
	}

	updated, _ := model.Update(tickMsg(model.started.Add(3 * time.Second)))
	model = updated.(waitModel)

	if view := model.View(); !strings.Contains(view, "3s") {
		t.Fatalf("View() = %q, want elapsed 3s", view)
	}

	updated, cmd := model.Update(waitDoneMsg{err: errors.New("timeout")})
	model = updated.(waitModel)

	if !model.done || model.err == nil {
		t.Fatalf("waitDoneMsg not recorded: done=%v err=%v", model.done, model.err)
	}

	if cmd == nil {
		t.Fatal("waitDoneMsg should return tea.Quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}

	if view := model.View(); !strings.Contains(view, "✘") {
		t.Fatalf("View() after failure = %q", view)
	}
}

func TestReportListModel_NewestFirstAndDetail(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	model := newReportListModel([]m.Report{
		sampleReport("oauth-google", m.Pass, started),
		sampleReport("oauth-github", m.Fail, started.Add(time.Hour)),
	})

	if model.failed != 1 {
		t.Fatalf("failed = %d, want 1", model.failed)
	}

	first, ok := model.reports.Items()[0].(reportItem)
	if !ok || first.report.TestID != "oauth-github" {
		t.Fatalf("first item = %+v, want newest report", model.reports.Items()[0])
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(reportListModel)

	view := model.View()
	for _, want := range []string{"handcheck reports", "oauth-github", "Reports:", "enter open"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(reportListModel)

	if model.detail == nil || model.detail.TestID != "oauth-github" {
		t.Fatalf("enter did not open the selected report")
	}

	if view := model.View(); !strings.Contains(view, "state mismatch") {
		t.Fatalf("detail view missing step error\n%s", view)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(reportListModel)

	if model.detail != nil {
		t.Fatal("esc did not close the detail view")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestReportListModel_TickAdvancesAnimation(t *testing.T) {
	model := newReportListModel([]m.Report{sampleReport("checklist-payments", m.Pass, time.Now())})

	updated, cmd := model.Update(tickMsg(time.Now()))
	model = updated.(reportListModel)

	if model.animOffset != 1 || model.delegate.offset != 1 {
		t.Fatalf("animOffset = %d delegate.offset = %d, want 1", model.animOffset, model.delegate.offset)
	}

	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func TestReportItem_FilterValue(t *testing.T) {
	item := reportItem{report: sampleReport("email-welcome", m.Pass, time.Now())}

	if got := item.FilterValue(); !strings.Contains(got, "email-welcome") || !strings.Contains(got, "pass") {
		t.Fatalf("FilterValue() = %q", got)
	}
}
