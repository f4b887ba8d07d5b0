// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-codelinks pipeline.
package types

// Publication represents one PubMed bibliographic record with the repository
// link extracted from its text, if any.
type Publication struct {
	// PMID is the PubMed identifier of the record.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title. Empty when the record carries none.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Abstract is the first abstract paragraph. Empty when the record has
	// no abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// RepoURL is the first GitHub repository URL found anywhere in the
	// record's text. Empty when no link was found.
	RepoURL string `json:"repo_url,omitempty" yaml:"repo_url,omitempty"`

	// HasRepoURL reports whether RepoURL is set. Always derived from
	// RepoURL, never set independently.
	HasRepoURL bool `json:"has_repo_url" yaml:"has_repo_url"`
}
