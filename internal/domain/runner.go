package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mouse-blink/handcheck/internal/adapter"
	"github.com/mouse-blink/handcheck/internal/controller"
	"github.com/mouse-blink/handcheck/internal/logging"
	m "github.com/mouse-blink/handcheck/internal/model"
)

const manualUnavailable = "manual confirmation unavailable"

// Runner executes a suite and persists its report.
type Runner interface {
	Run(ctx context.Context, suite Suite) (m.Report, m.Path, error)
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	Store    adapter.ReportStore
	Prompter adapter.Prompter
	UI       controller.UI
	Logger   *log.Logger
	Reports  m.Path
	Operator string
	Host     string
	Clock    func() time.Time
}

type runner struct {
	RunnerOptions
}

// NewRunner creates a Runner. Missing clock and logger get defaults.
func NewRunner(opts RunnerOptions) Runner {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	if opts.Prompter == nil {
		opts.Prompter = adapter.NewAutoPrompter()
	}

	return &runner{RunnerOptions: opts}
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// Run executes every step in order and always writes a report, even when the
// context is cancelled part way. The returned error only reports a failure to
// persist the report.
func (r *runner) Run(ctx context.Context, suite Suite) (m.Report, m.Path, error) {
	if suite.Cleanup != nil {
		defer suite.Cleanup()
	}

	if suite.RunID == "" {
		suite.RunID = NewRunID()
	}

	logger := logging.Component(r.Logger, "runner").With("run", suite.RunID, "suite", suite.Name)

	report := m.Report{
		TestID:    m.CleanTestID(suite.TestID),
		RunID:     suite.RunID,
		Suite:     suite.Name,
		Target:    suite.Target,
		Operator:  r.Operator,
		Host:      r.Host,
		StartedAt: r.Clock(),
		Steps:     make([]m.StepResult, 0, len(suite.Steps)),
	}

	r.UI.DisplayRunStarted(suite.Name, suite.Target, len(suite.Steps))

	blockedBy := ""
	interrupted := false

	for i, step := range suite.Steps {
		var result m.StepResult

		switch {
		case interrupted:
			result = r.skipped(step, "skipped: run interrupted")
		case blockedBy != "":
			result = r.skipped(step, fmt.Sprintf("skipped: required step %s failed", blockedBy))
		default:
			r.UI.DisplayStepStarted(i, step.Name, step.Kind())

			var stop bool

			result, stop = r.runStep(ctx, step)
			if stop {
				interrupted = true
			}

			if result.Status == m.Fail && step.Required {
				blockedBy = step.Name
			}
		}

		logger.Debug("step finished", "step", step.Name, "status", result.Status, "error", result.Error)
		r.UI.DisplayStepCompleted(i, result)

		report.Steps = append(report.Steps, result)
	}

	report.FinishedAt = r.Clock()
	report.Summary = m.Summarize(report.Steps)

	path, err := r.Store.SaveReport(r.Reports, report)
	if err != nil {
		return report, "", fmt.Errorf("save report: %w", err)
	}

	logger.Info("report written", "path", path, "verdict", report.Summary.Verdict)

	return report, path, nil
}

func (r *runner) skipped(step Step, reason string) m.StepResult {
	return m.StepResult{
		Name:      step.Name,
		Kind:      step.Kind(),
		Status:    m.Skip,
		Error:     reason,
		Timestamp: r.Clock(),
	}
}

// runStep executes one step. stop is true when the run must not continue:
// the context was cancelled or the operator aborted.
func (r *runner) runStep(ctx context.Context, step Step) (m.StepResult, bool) {
	started := r.Clock()
	result := m.StepResult{Name: step.Name, Kind: step.Kind(), Timestamp: started}

	finish := func(status m.Status, errText, note string) m.StepResult {
		result.Status = status
		result.Error = errText
		result.Note = note
		result.DurationMS = r.Clock().Sub(started).Milliseconds()

		return result
	}

	if err := ctx.Err(); err != nil {
		return finish(m.Fail, err.Error(), ""), true
	}

	if step.Guard != nil {
		if err := step.Guard(); err != nil {
			if errors.Is(err, ErrSkip) {
				return finish(m.Skip, "", skipReason(err)), false
			}

			return finish(m.Fail, err.Error(), ""), false
		}
	}

	note := ""

	if step.Run != nil {
		var err error

		note, err = step.Run(ctx)

		switch {
		case err == nil:
		case ctx.Err() != nil:
			return finish(m.Fail, ctx.Err().Error(), note), true
		case errors.Is(err, ErrSkip):
			if step.Question == "" {
				return finish(m.Skip, "", joinNote(note, skipReason(err))), false
			}

			// a skipped probe still leaves the judgement to the operator
			note = joinNote(note, skipReason(err))
		default:
			return finish(m.Fail, err.Error(), note), errors.Is(err, adapter.ErrAborted)
		}
	}

	if step.Question == "" {
		return finish(m.Pass, "", note), false
	}

	if !r.Prompter.Interactive() {
		return finish(m.Skip, "", joinNote(note, manualUnavailable)), false
	}

	verdict, err := r.Prompter.Confirm(ctx, adapter.Question{
		Step:        step.Name,
		Instruction: step.Instruction,
		Text:        step.Question,
	})
	if err != nil {
		if ctx.Err() != nil {
			return finish(m.Fail, ctx.Err().Error(), note), true
		}

		return finish(m.Fail, err.Error(), note), errors.Is(err, adapter.ErrAborted)
	}

	switch verdict.Status {
	case m.Fail:
		errText := verdict.Note
		if errText == "" {
			errText = "rejected by operator"
		}

		return finish(m.Fail, errText, note), false
	default:
		return finish(verdict.Status, "", joinNote(note, verdict.Note)), false
	}
}

func joinNote(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}
