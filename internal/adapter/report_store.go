package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/routelint/internal/model"
)

// ReportStore persists a broken link report for later inspection.
type ReportStore interface {
	SaveReport(path m.Path, report m.BrokenLinkReport) error
}

// LocalReportStore writes reports as YAML files on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Root    string       `yaml:"root"`
	Router  string       `yaml:"router"`
	Summary summaryYAML  `yaml:"summary"`
	Broken  []brokenYAML `yaml:"broken"`
}

type summaryYAML struct {
	DeclaredRoutes     int `yaml:"declared_routes"`
	DistinctReferences int `yaml:"distinct_references"`
	TotalReferences    int `yaml:"total_references"`
	ExemptedGroups     int `yaml:"exempted_groups"`
	BrokenGroups       int `yaml:"broken_groups"`
}

type brokenYAML struct {
	Target      string           `yaml:"target"`
	RawTargets  []string         `yaml:"raw_targets"`
	Suggestion  string           `yaml:"suggestion,omitempty"`
	Occurrences []occurrenceYAML `yaml:"occurrences"`
}

type occurrenceYAML struct {
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Kind    string `yaml:"kind"`
	Snippet string `yaml:"snippet"`
}

// SaveReport writes the report to path, creating parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.BrokenLinkReport) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	data, err := yaml.Marshal(toReportYAML(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func toReportYAML(report m.BrokenLinkReport) reportYAML {
	out := reportYAML{
		Root:   string(report.Root),
		Router: string(report.Router),
		Summary: summaryYAML{
			DeclaredRoutes:     report.DeclaredRoutes,
			DistinctReferences: report.DistinctReferences,
			TotalReferences:    report.TotalReferences,
			ExemptedGroups:     report.ExemptedGroups,
			BrokenGroups:       len(report.Broken),
		},
		Broken: make([]brokenYAML, 0, len(report.Broken)),
	}

	for _, link := range report.Broken {
		entry := brokenYAML{
			Target:      link.Group.NormalizedTarget,
			RawTargets:  link.Group.RawTargets(),
			Occurrences: make([]occurrenceYAML, 0, len(link.Group.Occurrences)),
		}

		if link.Suggestion != nil {
			entry.Suggestion = link.Suggestion.RawPattern
		}

		for _, ref := range link.Group.Occurrences {
			entry.Occurrences = append(entry.Occurrences, occurrenceYAML{
				File:    string(ref.File),
				Line:    ref.Line,
				Column:  ref.Column,
				Kind:    string(ref.Kind),
				Snippet: ref.Snippet,
			})
		}

		out.Broken = append(out.Broken, entry)
	}

	return out
}
