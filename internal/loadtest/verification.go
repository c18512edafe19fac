package loadtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/spithack/pkg/client"
	"github.com/okian/spithack/pkg/logger"
)

// ErrMismatch reports that the portal delivered a different number of forms
// than it accepted.
var ErrMismatch = errors.New("delivered forms do not match accepted forms")

// deliveredCount reads the outbox size from the stats endpoint. JSON numbers
// arrive as float64.
func deliveredCount(ctx context.Context, c *client.Client) (int, error) {
	stats, err := c.Stats(ctx)
	if err != nil {
		return 0, err
	}
	switch v := stats["delivered"].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("stats has no delivered count")
}

// awaitDelivery polls until the outbox has grown by want or settle elapses,
// returning the growth observed.
func awaitDelivery(ctx context.Context, c *client.Client, baseline, want int, settle time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, settle)
	defer cancel()

	ticker := time.NewTicker(SettlePollInterval)
	defer ticker.Stop()

	got := 0
	for {
		n, err := deliveredCount(ctx, c)
		if err == nil {
			got = n - baseline
			if got >= want {
				return got, nil
			}
		}
		select {
		case <-ctx.Done():
			return got, nil
		case <-ticker.C:
		}
	}
}

// verifyResults checks the invariants of a run: every replayed key was
// reported as a duplicate and the outbox holds each accepted form once.
func verifyResults(ctx context.Context, stats *Stats, replayed int) error {
	logger.Get().Info(ctx, "verifying results")

	if stats.Failed > 0 {
		logger.Get().Warn(ctx, "some posts failed", logger.Int("failed", stats.Failed))
	}
	if stats.Duplicates != replayed {
		logger.Get().Warn(ctx, "duplicate count differs from replayed keys",
			logger.Int("duplicates", stats.Duplicates), logger.Int("replayed", replayed))
	}
	if stats.Delivered != stats.Accepted {
		return fmt.Errorf("%w: accepted %d, delivered %d", ErrMismatch, stats.Accepted, stats.Delivered)
	}

	logger.Get().Info(ctx, "result verification completed")
	return nil
}
