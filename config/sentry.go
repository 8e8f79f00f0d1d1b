package config

import "fmt"

// SentryConfig defines settings for Sentry error monitoring. An empty DSN
// disables reporting.
type SentryConfig struct {
	DSN              string            `json:"dsn"`
	Environment      string            `json:"environment"`
	TracesSampleRate float64           `json:"traces_sample_rate"`
	Release          string            `json:"release"`
	Tags             map[string]string `json:"tags"`
}

// SetDefaults fills the environment and release when reporting is enabled.
func (c *SentryConfig) SetDefaults(release string) {
	if c.DSN == "" {
		return
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
	if c.Release == "" {
		c.Release = release
	}
}

// Validate checks the sample rate bounds.
func (c SentryConfig) Validate() error {
	if c.TracesSampleRate < 0 || c.TracesSampleRate > 1 {
		return fmt.Errorf("sentry.traces_sample_rate must be within [0,1], got %g", c.TracesSampleRate)
	}
	return nil
}
