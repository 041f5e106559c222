package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// HuhPrompter asks questions with interactive terminal forms.
type HuhPrompter struct {
	accessible bool
}

// NewHuhPrompter creates a HuhPrompter. Accessible mode swaps the TUI widgets
// for screen-reader friendly prompts.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{accessible: accessible}
}

// Confirm shows a pass/fail/skip selector and, on fail, asks for a note.
func (h *HuhPrompter) Confirm(ctx context.Context, q Question) (Verdict, error) {
	choice := m.Pass.String()

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(q.Text).
			Description(q.Instruction).
			Options(
				huh.NewOption("Pass", m.Pass.String()),
				huh.NewOption("Fail", m.Fail.String()),
				huh.NewOption("Skip", m.Skip.String()),
			).
			Value(&choice),
	)).WithAccessible(h.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return Verdict{}, h.mapErr(err)
	}

	status, err := m.ParseStatus(choice)
	if err != nil {
		return Verdict{}, err
	}

	if status != m.Fail {
		return Verdict{Status: status}, nil
	}

	var note string

	noteForm := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title(fmt.Sprintf("%s: what went wrong?", q.Step)).
			Value(&note),
	)).WithAccessible(h.accessible)

	if err := noteForm.RunWithContext(ctx); err != nil {
		return Verdict{}, h.mapErr(err)
	}

	return Verdict{Status: m.Fail, Note: note}, nil
}

// Pause shows the message and waits for confirmation to continue.
func (h *HuhPrompter) Pause(ctx context.Context, message string) error {
	proceed := true

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Continue").
			Negative("Abort").
			Value(&proceed),
	)).WithAccessible(h.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return h.mapErr(err)
	}

	if !proceed {
		return ErrAborted
	}

	return nil
}

// Interactive is true: answers come from a person.
func (h *HuhPrompter) Interactive() bool {
	return true
}

func (h *HuhPrompter) mapErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}

	return err
}
