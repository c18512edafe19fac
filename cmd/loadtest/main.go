package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/spithack/internal/loadtest"
)

// Default configuration constants.
const (
	defaultNumForms    = 2000
	defaultDupes       = 0.1
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 10 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the portal")
		numForms   = flag.Int("forms", defaultNumForms, "Number of distinct forms to post")
		dupes      = flag.Float64("dupes", defaultDupes, "Share of forms posted twice with the same key")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent posters")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		settle     = flag.Duration("settle", loadtest.DefaultSettle, "How long to wait for the outbox to drain")
		outputFile = flag.String("output", "", "Write generated forms to this JSON file")
		logFile    = flag.String("log", "", "Also write log lines to this file")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadtest.ShowHelp()
		return
	}

	if err := loadtest.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &loadtest.Config{
		BaseURL:        *baseURL,
		NumForms:       *numForms,
		DuplicateRatio: *dupes,
		Workers:        *workers,
		Timeout:        *timeout,
		Settle:         *settle,
		OutputFile:     *outputFile,
		Verbose:        *verbose,
	}

	if _, err := loadtest.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Load run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}
}
