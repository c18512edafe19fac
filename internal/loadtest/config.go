// Package loadtest drives concurrent form traffic against a running portal
// and checks that every accepted form reaches the outbox exactly once.
package loadtest

import (
	"time"

	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/wizard"
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL        string        // portal base URL
	NumForms       int           // distinct forms to generate
	DuplicateRatio float64       // share of forms posted a second time with the same key
	Workers        int           // concurrent posters
	Timeout        time.Duration // per-request timeout
	Settle         time.Duration // how long to wait for the outbox to drain
	OutputFile     string        // where generated forms are written; empty skips
	Verbose        bool
}

// Form is one generated post. Exactly one of Registration and Submission is set.
type Form struct {
	Key          string                 `json:"idempotency_key"`
	Registration *wizard.Registration   `json:"registration,omitempty"`
	Submission   *submission.Submission `json:"submission,omitempty"`
}

// Stats holds run statistics.
type Stats struct {
	Generated  int
	Posted     int
	Accepted   int
	Duplicates int
	Throttled  int
	Failed     int
	Delivered  int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}
