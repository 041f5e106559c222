// Package model defines the data structures shared by handcheck runs and reports.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Path represents a file system path.
type Path string

// Status is the verdict recorded for a single step.
type Status int

// The zero value is Skip so a result that never got a verdict is not a pass.
const (
	// Skip indicates the step did not run or could not be judged.
	Skip Status = iota
	// Pass indicates the step met its expectation.
	Pass
	// Fail indicates the step errored or a human rejected the outcome.
	Fail
)

var statusNames = map[Status]string{
	Pass: "pass",
	Fail: "fail",
	Skip: "skip",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseStatus converts a textual verdict into a Status.
func ParseStatus(raw string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(strings.TrimSpace(raw), name) {
			return status, nil
		}
	}

	return Skip, fmt.Errorf("unknown status %q", raw)
}

// MarshalJSON encodes the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}

	return json.Marshal(name)
}

// UnmarshalJSON decodes a lowercase status name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// StepKind tells whether a step was judged by code or by a person.
type StepKind string

const (
	// StepAuto is evaluated by the runner.
	StepAuto StepKind = "auto"
	// StepManual is confirmed by the operator.
	StepManual StepKind = "manual"
)

// StepResult is the recorded outcome of one step.
type StepResult struct {
	Name       string    `json:"name"`
	Kind       StepKind  `json:"kind"`
	Status     Status    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Note       string    `json:"note,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms"`
}

// Summary aggregates the step results of a report.
type Summary struct {
	Total   int    `json:"total"`
	Passed  int    `json:"passed"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
	Verdict Status `json:"verdict"`
}

// Summarize counts the steps. The verdict is fail when any step failed,
// pass when at least one step passed, and skip otherwise.
func Summarize(steps []StepResult) Summary {
	summary := Summary{Total: len(steps), Verdict: Skip}

	for _, step := range steps {
		switch step.Status {
		case Pass:
			summary.Passed++
		case Fail:
			summary.Failed++
		default:
			summary.Skipped++
		}
	}

	switch {
	case summary.Failed > 0:
		summary.Verdict = Fail
	case summary.Passed > 0:
		summary.Verdict = Pass
	}

	return summary
}

// Report is the write-once record of a single run.
type Report struct {
	TestID     string       `json:"test_id"`
	RunID      string       `json:"run_id"`
	Suite      string       `json:"suite"`
	Target     string       `json:"target"`
	Operator   string       `json:"operator,omitempty"`
	Host       string       `json:"host,omitempty"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Steps      []StepResult `json:"steps"`
	Summary    Summary      `json:"summary"`
}

// ReportTimeLayout is embedded in report file names.
const ReportTimeLayout = "20060102-150405"

// FileName returns the timestamp-qualified file name for the report.
func (r Report) FileName() string {
	return fmt.Sprintf("%s-%s.json", CleanTestID(r.TestID), r.StartedAt.UTC().Format(ReportTimeLayout))
}

// CleanTestID maps id onto a single file name component: anything outside
// [A-Za-z0-9._-] becomes '-', and leading dots and dashes are dropped so the
// result never names a parent directory or a hidden file. It returns "" when
// nothing usable is left.
func CleanTestID(id string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(id))

	return strings.TrimLeft(cleaned, ".-")
}
