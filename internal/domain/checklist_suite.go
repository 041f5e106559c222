package domain

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	m "github.com/mouse-blink/handcheck/internal/model"
)

func (w *workflow) checklistSuite(cl m.Checklist, args ChecklistArgs, runID string) Suite {
	steps := make([]Step, 0, len(cl.Steps))

	for _, item := range cl.Steps {
		step := Step{
			Name:        item.Name,
			Instruction: item.Instruction,
			Question:    item.Question,
			Required:    item.Required,
		}

		if item.Probe != nil {
			step.Run = w.probe(*item.Probe)
		}

		steps = append(steps, step)
	}

	target := cl.Description
	if target == "" {
		target = cl.Name
	}

	return Suite{
		TestID: testIDOr(args.TestID, "checklist-"+cl.Name),
		RunID:  runID,
		Name:   "checklist",
		Target: target,
		Steps:  steps,
	}
}

// probe returns the automated check of a checklist step.
func (w *workflow) probe(p m.Probe) StepFunc {
	return func(ctx context.Context) (string, error) {
		target, missing := expandProbeVars(p.URL, w.probeVars())
		if len(missing) > 0 {
			return "", Skipf("probe needs %s", strings.Join(missing, ", "))
		}

		timeout := time.Duration(p.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = w.cfg.HTTPTimeout()
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		switch p.Type {
		case m.ProbeHTTP:
			if err := w.prober.HTTPStatus(ctx, target, p.ExpectStatus); err != nil {
				return "", fmt.Errorf("probe: %w", err)
			}

			return "probe passed: GET " + target, nil
		case m.ProbeWebSocket:
			if err := w.prober.WebSocketEcho(ctx, target, p.Send, p.ExpectContains); err != nil {
				return "", fmt.Errorf("probe: %w", err)
			}

			return "probe passed: echo from " + target, nil
		default:
			return "", fmt.Errorf("probe: unsupported type %q", p.Type)
		}
	}
}

// probeVars are the placeholders checklist probes may reference.
func (w *workflow) probeVars() map[string]string {
	appURL := strings.TrimRight(w.cfg.General.AppURL, "/")

	wsURL := ""

	switch {
	case strings.HasPrefix(appURL, "https://"):
		wsURL = "wss://" + strings.TrimPrefix(appURL, "https://")
	case strings.HasPrefix(appURL, "http://"):
		wsURL = "ws://" + strings.TrimPrefix(appURL, "http://")
	}

	return map[string]string{
		"app_url": appURL,
		"ws_url":  wsURL,
	}
}

// expandProbeVars substitutes ${name} placeholders and reports the ones
// without a value.
func expandProbeVars(raw string, vars map[string]string) (string, []string) {
	seen := map[string]struct{}{}

	expanded := os.Expand(raw, func(key string) string {
		value := vars[key]
		if value == "" {
			seen[key] = struct{}{}
		}

		return value
	})

	missing := make([]string, 0, len(seen))
	for key := range seen {
		missing = append(missing, key)
	}

	sort.Strings(missing)

	return expanded, missing
}
