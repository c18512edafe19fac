// Package config defines the portal configuration and its loading.
//
// Values are layered: defaults from New, then an optional YAML file named by
// HACKATHON_CONFIG, then HACKATHON_* environment variables.
package config

import (
	"context"
	"runtime"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the form outbox queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of outbox workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the number of remembered idempotency keys.
	DedupeSize int `koanf:"dedupe_size"`

	// HeroIntervalMS is the landing page background rotation period.
	HeroIntervalMS int `koanf:"hero_interval_ms"`

	// FixturesPath optionally replaces the embedded portal records.
	FixturesPath string `koanf:"fixtures_path"`

	// OTelEndpoint enables OTLP/HTTP trace export when set.
	OTelEndpoint string `koanf:"otel_endpoint"`

	// ServiceName is reported as the OpenTelemetry service.name.
	ServiceName string `koanf:"service_name"`
}

// New returns a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":9080",
		QueueSize:      1024,
		WorkerCount:    runtime.NumCPU(),
		DedupeSize:     10_000,
		HeroIntervalMS: 5000,
		ServiceName:    "spithack",
	}
}

// HeroInterval returns HeroIntervalMS as a duration.
func (c *Config) HeroInterval() time.Duration {
	return time.Duration(c.HeroIntervalMS) * time.Millisecond
}
