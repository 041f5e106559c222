// Package adapter contains the infrastructure adapters used by handcheck runs:
// operator prompts, report persistence, OAuth, mail delivery and network probes.
package adapter

import (
	"context"
	"errors"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// ErrAborted is returned when the operator abandons a prompt.
var ErrAborted = errors.New("aborted by operator")

// Question is shown to the operator for a manual step.
type Question struct {
	Step        string
	Instruction string
	Text        string
}

// Verdict is the operator's answer to a Question.
type Verdict struct {
	Status m.Status
	Note   string
}

// Prompter asks a person to judge outcomes that code cannot.
type Prompter interface {
	// Confirm asks the question and blocks until the operator answers.
	Confirm(ctx context.Context, q Question) (Verdict, error)
	// Pause shows a message and waits for the operator to continue.
	Pause(ctx context.Context, message string) error
	// Interactive reports whether a person is actually answering.
	Interactive() bool
}

// AutoPrompter answers every question with skip. It backs --non-interactive
// runs so CI can still produce a report.
type AutoPrompter struct{}

// NewAutoPrompter creates an AutoPrompter.
func NewAutoPrompter() *AutoPrompter {
	return &AutoPrompter{}
}

// Confirm records the step as skipped.
func (a *AutoPrompter) Confirm(ctx context.Context, _ Question) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}

	return Verdict{Status: m.Skip, Note: "manual confirmation unavailable"}, nil
}

// Pause returns immediately.
func (a *AutoPrompter) Pause(ctx context.Context, _ string) error {
	return ctx.Err()
}

// Interactive is always false.
func (a *AutoPrompter) Interactive() bool {
	return false
}
