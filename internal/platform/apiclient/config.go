// Package apiclient is the HTTP client the CLI uses to talk to the backend.
package apiclient

import "time"

const (
	// DefaultBaseURL is the backend address when none is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second
)

// Config holds the backend location.
type Config struct {
	BaseURL string        // Backend base URL (e.g., "http://localhost:8080")
	Timeout time.Duration // HTTP request timeout
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
