// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// IDFile is the on-disk representation of a collected PMID list. The
// operator can save a search to a file and fetch details later without
// re-paging the search API.
type IDFile struct {
	Query     string    `yaml:"query"`
	Total     int       `yaml:"total"`
	Retrieved time.Time `yaml:"retrieved"`
	IDs       []string  `yaml:"ids"`
}

// WriteIDFile saves the query and its collected PMIDs to a YAML file.
func WriteIDFile(path, query string, ids []string) error {
	f := IDFile{
		Query:     query,
		Total:     len(ids),
		Retrieved: time.Now(),
		IDs:       ids,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling ID file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadIDFile loads a previously saved ID file from disk.
func ReadIDFile(path string) (*IDFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ID file: %w", err)
	}
	var f IDFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing ID file: %w", err)
	}
	return &f, nil
}
