package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-codelinks/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EntrezConfig holds settings for the NCBI E-utilities client.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline"`

	// DB is the Entrez database to query (default "pubmed").
	DB string `json:"db" yaml:"db"`

	// Email is sent as the email parameter so NCBI can contact the
	// operator about problematic request patterns. Optional.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	// Optional.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// HarvestConfig holds settings for the harvest pipeline.
type HarvestConfig struct {
	// Query is the Entrez search term (default "github").
	Query string `json:"query" yaml:"query"`

	// PageSize is the esearch page size (retmax, default 10000, which is
	// also the esearch maximum).
	PageSize int `json:"page_size" yaml:"page_size"`

	// FetchSize is the number of IDs submitted per efetch call (default 100).
	FetchSize int `json:"fetch_size" yaml:"fetch_size"`

	// RequestDelay is the pause between consecutive remote calls (default 1s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// SinkConfig holds settings for the results database.
type SinkConfig struct {
	// Path is the SQLite database file (default "pubmed_codelinks.db").
	Path string `json:"path" yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// File receives a copy of all log output in addition to stdout.
	File string `json:"file" yaml:"file"`

	// Level is the minimum level to emit: "info" or "debug".
	Level string `json:"level" yaml:"level"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Entrez  EntrezConfig  `json:"entrez" yaml:"entrez"`
	Harvest HarvestConfig `json:"harvest" yaml:"harvest"`
	Sink    SinkConfig    `json:"sink" yaml:"sink"`
	Log     LogConfig     `json:"log" yaml:"log"`
}
