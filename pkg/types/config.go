// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for remote source downloads.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "timeline-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConvertConfig carries the per-run conversion knobs.
type ConvertConfig struct {
	// Scale is copied into the output document unchanged.
	Scale Scale `json:"scale" yaml:"scale"`

	// Strict selects the lenient/report-all execution policy: row
	// failures are recorded, the row is skipped, and the run fails at
	// the end if any failures accumulated. When false the first row
	// failure aborts the run immediately.
	Strict bool `json:"strict" yaml:"strict"`
}

// HistoryConfig locates the conversion-run history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults bounds history listings; 0 means the default (20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
