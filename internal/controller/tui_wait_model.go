package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// waitModel spins while a step waits on the browser, the mailbox or a provider.
type waitModel struct {
	spinner spinner.Model
	message string
	started time.Time
	now     time.Time
	done    bool
	err     error
}

func newWaitModel(message string) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	now := time.Now()

	return waitModel{spinner: s, message: message, started: now, now: now}
}

func (w waitModel) Init() tea.Cmd {
	return tea.Batch(w.spinner.Tick, tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	}))
}

func (w waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitDoneMsg:
		w.done = true
		w.err = msg.err

		return w, tea.Quit

	case tickMsg:
		w.now = time.Time(msg)

		return w, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case spinner.TickMsg:
		var cmd tea.Cmd

		w.spinner, cmd = w.spinner.Update(msg)

		return w, cmd
	}

	return w, nil
}

func (w waitModel) View() string {
	elapsed := w.now.Sub(w.started).Truncate(time.Second)

	if w.done {
		if w.err != nil {
			return fmt.Sprintf("%s %s %s\n", dimStyle.Render("✘"), w.message, dimStyle.Render(elapsed.String()))
		}

		return fmt.Sprintf("%s %s %s\n", accentStyle.Render("✔"), w.message, dimStyle.Render(elapsed.String()))
	}

	return fmt.Sprintf("%s %s %s\n", w.spinner.View(), w.message, dimStyle.Render(elapsed.String()))
}
