package adapter

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/handcheck/internal/model"
)

//go:embed checklists/*.yaml
var bundledChecklists embed.FS

// ChecklistStore resolves checklist references to parsed checklists.
type ChecklistStore interface {
	// Load accepts a bundled checklist name or a path to a YAML file.
	Load(ref string) (m.Checklist, error)
	// Bundled lists the names of the built-in checklists.
	Bundled() []string
}

// LocalChecklistStore reads checklists from disk or the embedded set.
type LocalChecklistStore struct {
	bundled fs.FS
}

// NewChecklistStore creates a LocalChecklistStore.
func NewChecklistStore() *LocalChecklistStore {
	sub, _ := fs.Sub(bundledChecklists, "checklists")

	return &LocalChecklistStore{bundled: sub}
}

// Load implements ChecklistStore. Paths win over bundled names so a project
// can shadow a built-in checklist with a local file of the same name.
func (s *LocalChecklistStore) Load(ref string) (m.Checklist, error) {
	if ref == "" {
		return m.Checklist{}, fmt.Errorf("checklist reference is empty")
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return m.Checklist{}, fmt.Errorf("read checklist %s: %w", ref, err)
		}

		data, err = fs.ReadFile(s.bundled, ref+".yaml")
		if err != nil {
			return m.Checklist{}, fmt.Errorf("unknown checklist %q (bundled: %s)", ref, strings.Join(s.Bundled(), ", "))
		}
	}

	return ParseChecklist(data)
}

// Bundled implements ChecklistStore.
func (s *LocalChecklistStore) Bundled() []string {
	matches, err := fs.Glob(s.bundled, "*.yaml")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(path.Base(match), ".yaml"))
	}

	sort.Strings(names)

	return names
}

// ParseChecklist decodes and validates checklist YAML. Unknown fields are
// rejected so typos in probe settings do not silently disable a check.
func ParseChecklist(data []byte) (m.Checklist, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cl m.Checklist
	if err := dec.Decode(&cl); err != nil {
		return m.Checklist{}, fmt.Errorf("decode checklist: %w", err)
	}

	if err := validateChecklist(cl); err != nil {
		return m.Checklist{}, err
	}

	return cl, nil
}

func validateChecklist(cl m.Checklist) error {
	var errs []string

	if strings.TrimSpace(cl.Name) == "" {
		errs = append(errs, "name is required")
	}

	if len(cl.Steps) == 0 {
		errs = append(errs, "at least one step is required")
	}

	seen := make(map[string]struct{}, len(cl.Steps))

	for i, step := range cl.Steps {
		if step.Name == "" {
			errs = append(errs, fmt.Sprintf("steps[%d].name is required", i))
		} else if _, dup := seen[step.Name]; dup {
			errs = append(errs, fmt.Sprintf("steps[%d].name %q is duplicated", i, step.Name))
		}

		seen[step.Name] = struct{}{}

		if strings.TrimSpace(step.Question) == "" {
			errs = append(errs, fmt.Sprintf("steps[%d].question is required", i))
		}

		if step.Probe != nil {
			switch step.Probe.Type {
			case m.ProbeHTTP, m.ProbeWebSocket:
			default:
				errs = append(errs, fmt.Sprintf("steps[%d].probe.type %q must be http or websocket", i, step.Probe.Type))
			}

			if step.Probe.URL == "" {
				errs = append(errs, fmt.Sprintf("steps[%d].probe.url is required", i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid checklist: %s", strings.Join(errs, "; "))
	}

	return nil
}
