package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// ErrSkip marks a step that could not or should not run. Wrap it with a
// reason via Skipf.
var ErrSkip = errors.New("skip")

// ErrRunFailed is returned by the run operations when the report verdict is fail.
var ErrRunFailed = errors.New("run verdict is fail")

// Skipf returns an error wrapping ErrSkip with the given reason.
func Skipf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSkip, fmt.Sprintf(format, args...))
}

func skipReason(err error) string {
	return strings.TrimPrefix(err.Error(), ErrSkip.Error()+": ")
}

// StepFunc is the automated part of a step. The returned note is stored with
// the result whatever the outcome.
type StepFunc func(ctx context.Context) (string, error)

// Step is one unit of a suite. A step with a Question is manual: its Run, if
// any, acts as a probe that must pass before the operator is asked.
type Step struct {
	Name        string
	Instruction string
	Question    string
	// Required steps block the rest of the suite when they fail.
	Required bool
	// Guard is checked before anything else; a Skipf error skips the step
	// without running or prompting.
	Guard func() error
	Run   StepFunc
}

// Kind tells whether the verdict comes from code or from the operator.
func (s Step) Kind() m.StepKind {
	if s.Question != "" {
		return m.StepManual
	}

	return m.StepAuto
}

// Suite is an ordered list of steps that produces one report.
type Suite struct {
	TestID string
	RunID  string
	Name   string
	Target string
	Steps  []Step
	// Cleanup runs after the last step, also on interruption.
	Cleanup func()
}
