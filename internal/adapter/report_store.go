package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// ErrReportExists is returned when a report file with the same name is already on disk.
var ErrReportExists = errors.New("report already exists")

const indexFileName = "index.yaml"

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReport(path m.Path) (m.Report, error)
	ListReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore writes one JSON file per run plus a YAML index of all runs.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type indexYAML struct {
	Reports []indexEntry `yaml:"reports"`
}

type indexEntry struct {
	File      string    `yaml:"file"`
	TestID    string    `yaml:"test_id"`
	Suite     string    `yaml:"suite"`
	Target    string    `yaml:"target"`
	Verdict   string    `yaml:"verdict"`
	Failed    int       `yaml:"failed"`
	StartedAt time.Time `yaml:"started_at"`
}

// SaveReport writes the report to dir under its timestamped name. Reports are
// write-once: an existing file is never replaced.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if m.CleanTestID(report.TestID) == "" {
		return "", fmt.Errorf("report has no usable test id (%q)", report.TestID)
	}

	name := report.FileName()
	if !filepath.IsLocal(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("report file name %q escapes %s", name, dir)
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrReportExists, path)
		}

		return "", fmt.Errorf("create report file: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write report file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}

	if err := rs.appendIndex(dir, report); err != nil {
		return m.Path(path), err
	}

	return m.Path(path), nil
}

// LoadReport reads a single report file.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

// ListReports loads every report in dir ordered by start time. A missing
// directory yields an empty list.
func (rs *LocalReportStore) ListReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []m.Report{}, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		report, err := rs.LoadReport(m.Path(filepath.Join(string(dir), entry.Name())))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}

func (rs *LocalReportStore) appendIndex(dir m.Path, report m.Report) error {
	path := filepath.Join(string(dir), indexFileName)

	var index indexYAML

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("decode report index: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read report index: %w", err)
	}

	index.Reports = append(index.Reports, indexEntry{
		File:      report.FileName(),
		TestID:    report.TestID,
		Suite:     report.Suite,
		Target:    report.Target,
		Verdict:   report.Summary.Verdict.String(),
		Failed:    report.Summary.Failed,
		StartedAt: report.StartedAt.UTC(),
	})

	sort.SliceStable(index.Reports, func(i, j int) bool {
		return index.Reports[i].StartedAt.Before(index.Reports[j].StartedAt)
	})

	out, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("encode report index: %w", err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write report index: %w", err)
	}

	return nil
}
