package controller

import (
	"time"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func sampleReport(testID string, verdict m.Status, started time.Time) m.Report {
	steps := []m.StepResult{
		{Name: "config", Kind: m.StepAuto, Status: m.Pass, Timestamp: started},
		{Name: "callback", Kind: m.StepAuto, Status: verdict, Error: "state mismatch", Timestamp: started},
		{Name: "consent-screen", Kind: m.StepManual, Status: m.Skip, Note: "manual confirmation unavailable", Timestamp: started},
	}

	if verdict != m.Fail {
		steps[1].Error = ""
	}

	return m.Report{
		TestID:     testID,
		RunID:      "run-1",
		Suite:      "oauth",
		Target:     "google",
		Operator:   "qa",
		Host:       "laptop",
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Steps:      steps,
		Summary:    m.Summarize(steps),
	}
}
