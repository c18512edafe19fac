package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/spithack/pkg/client"
	"github.com/okian/spithack/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes a complete load run against cfg.BaseURL.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultSettle
	}

	log := logger.Get()
	log.Info(ctx, "starting portal load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("forms", cfg.NumForms),
		logger.Float64("duplicateRatio", cfg.DuplicateRatio),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout))

	c := client.New(cfg.BaseURL, client.WithTimeout(cfg.Timeout))

	baseline, err := deliveredCount(ctx, c)
	if err != nil {
		return stats, fmt.Errorf("portal health check failed: %w", err)
	}

	forms, err := generateForms(ctx, cfg.NumForms, stats)
	if err != nil {
		return stats, fmt.Errorf("form generation failed: %w", err)
	}

	postForms(ctx, c, cfg, forms, stats)

	// Replays go out after the originals so every replayed key is already
	// known to the portal.
	replays := duplicatesOf(forms, cfg.DuplicateRatio)
	if len(replays) > 0 {
		postForms(ctx, c, cfg, replays, stats)
	}

	log.Info(ctx, "waiting for the outbox to drain")
	stats.Delivered, err = awaitDelivery(ctx, c, baseline, stats.Accepted, cfg.Settle)
	if err != nil {
		return stats, err
	}

	if cfg.OutputFile != "" {
		if err := saveFormsToFile(ctx, cfg.OutputFile, forms); err != nil {
			log.Warn(ctx, "failed to save forms to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if err := verifyResults(ctx, stats, len(replays)); err != nil {
		return stats, fmt.Errorf("result verification failed: %w", err)
	}
	log.Info(ctx, "load run completed successfully")
	return stats, nil
}

// saveFormsToFile writes the generated forms as a JSON array.
func saveFormsToFile(ctx context.Context, filename string, forms []Form) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close file", logger.Error(err))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(forms); err != nil {
		return fmt.Errorf("failed to write forms: %w", err)
	}

	logger.Get().Info(ctx, "forms saved to file", logger.String("filename", filename))
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	var acceptRate, formsPerSecond float64
	if stats.Posted > 0 {
		acceptRate = float64(stats.Accepted) / float64(stats.Posted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		formsPerSecond = float64(stats.Posted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("generated", stats.Generated),
		logger.Int("posted", stats.Posted),
		logger.Int("accepted", stats.Accepted),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("throttled", stats.Throttled),
		logger.Int("failed", stats.Failed),
		logger.Int("delivered", stats.Delivered),
		logger.Duration("duration", stats.Duration),
		logger.Float64("acceptRate", acceptRate),
		logger.Float64("formsPerSecond", formsPerSecond))
}
