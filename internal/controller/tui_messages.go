package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// Message types.
type tickMsg time.Time

type waitDoneMsg struct {
	err error
}

// List item types.
type reportItem struct {
	report m.Report
}

func (r reportItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", r.report.TestID, r.report.Suite, r.report.Target, r.report.Summary.Verdict)
}
