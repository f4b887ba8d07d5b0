// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez queries the NCBI E-utilities API: esearch for paginated
// PMID discovery and efetch for full bibliographic records.
package entrez

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

// DefaultBaseURL is the production E-utilities endpoint prefix.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Client calls the E-utilities endpoints under a common base URL.
type Client struct {
	// BaseURL is the endpoint prefix; esearch.fcgi and efetch.fcgi are
	// appended to it. Tests point this at an httptest server.
	BaseURL string

	HTTP *http.Client

	cfg types.EntrezConfig
	log zerolog.Logger
}

// NewClient returns a Client against the production E-utilities endpoint.
func NewClient(cfg types.EntrezConfig, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		log:     logger,
	}
}

// commonParams returns the query parameters shared by every E-utilities
// call: target database, response format, and optional operator identity.
func (c *Client) commonParams() url.Values {
	params := url.Values{
		"db":      {c.cfg.DB},
		"retmode": {"xml"},
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	return params
}
