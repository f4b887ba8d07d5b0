// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report summarizes one completed harvest run.
type Report struct {
	Query       string    `yaml:"query"`
	IDsFound    int       `yaml:"ids_found"`
	Fetched     int       `yaml:"fetched"`
	Total       int       `yaml:"total"`
	WithLink    int       `yaml:"with_link"`
	WithoutLink int       `yaml:"without_link"`
	Completed   time.Time `yaml:"completed"`
}

// NewReport builds a Report from the query and the run statistics.
func NewReport(query string, stats Stats) Report {
	return Report{
		Query:       query,
		IDsFound:    stats.IDsFound,
		Fetched:     stats.Fetched,
		Total:       stats.Summary.Total,
		WithLink:    stats.Summary.WithLink,
		WithoutLink: stats.Summary.WithoutLink,
		Completed:   time.Now(),
	}
}

// WriteReport saves the run report to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
