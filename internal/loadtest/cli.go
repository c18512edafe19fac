package loadtest

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/spithack/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging initialises the global logger, writing to stdout and, when
// logFile is set, to that file as well.
func SetupLogging(logFile string, verbose bool) error {
	var out io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}
	if err := logger.Init(logger.WithOutput(out)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information.
func ShowHelp() {
	os.Stdout.WriteString(`Portal Load Tool
================

Posts generated registrations and project submissions concurrently, replays
a share of them with the same idempotency key, and checks the outbox.

Usage:
  go run ./cmd/loadtest [options]

Options:
  -url string
        Base URL of the portal (default "http://localhost:9080")
  -forms int
        Number of distinct forms to post (default 2000)
  -dupes float
        Share of forms posted twice with the same key (default 0.1)
  -workers int
        Number of concurrent posters (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -settle duration
        How long to wait for the outbox to drain (default 30s)
  -output string
        Write generated forms to this JSON file
  -log string
        Also write log lines to this file
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  go run ./cmd/loadtest -forms 10000 -workers 32
  go run ./cmd/loadtest -dupes 0.5 -output forms.json
`)
}
