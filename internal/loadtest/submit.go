package loadtest

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/pkg/client"
	"github.com/okian/spithack/pkg/logger"
)

// postForms posts forms concurrently and tallies outcomes into stats.
func postForms(ctx context.Context, c *client.Client, cfg *Config, forms []Form, stats *Stats) {
	log := logger.Get()
	log.Info(ctx, "posting forms", logger.Int("forms", len(forms)), logger.Int("workers", cfg.Workers))

	var (
		posted    atomic.Int64
		accepted  atomic.Int64
		duplicate atomic.Int64
		throttled atomic.Int64
		failed    atomic.Int64
		lastNanos atomic.Int64
	)
	reportInterval := time.Second

	formChan := make(chan Form, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range formChan {
				if ctx.Err() != nil {
					return
				}
				switch postSingleForm(ctx, c, f) {
				case outcomeAccepted:
					accepted.Add(1)
				case outcomeDuplicate:
					duplicate.Add(1)
				case outcomeThrottled:
					throttled.Add(1)
				default:
					failed.Add(1)
				}
				total := posted.Add(1)

				now := time.Now().UnixNano()
				last := lastNanos.Load()
				if now-last >= int64(reportInterval) && lastNanos.CompareAndSwap(last, now) {
					log.Debug(ctx, "progress",
						logger.Int64("posted", total),
						logger.Int("total", len(forms)),
						logger.Int64("accepted", accepted.Load()),
						logger.Int64("duplicate", duplicate.Load()),
						logger.Int64("throttled", throttled.Load()),
						logger.Int64("failed", failed.Load()))
				}
			}
		}()
	}

	go func() {
		defer close(formChan)
		for _, f := range forms {
			select {
			case <-ctx.Done():
				return
			case formChan <- f:
			}
		}
	}()

	wg.Wait()

	stats.Posted += int(posted.Load())
	stats.Accepted += int(accepted.Load())
	stats.Duplicates += int(duplicate.Load())
	stats.Throttled += int(throttled.Load())
	stats.Failed += int(failed.Load())

	log.Info(ctx, "form posting completed",
		logger.Int64("accepted", accepted.Load()),
		logger.Int64("duplicate", duplicate.Load()),
		logger.Int64("throttled", throttled.Load()),
		logger.Int64("failed", failed.Load()))
}

// postSingleForm posts f and classifies the result.
func postSingleForm(ctx context.Context, c *client.Client, f Form) string {
	var (
		receipt *model.Receipt
		err     error
	)
	switch {
	case f.Registration != nil:
		receipt, err = c.Register(ctx, f.Key, *f.Registration)
	case f.Submission != nil:
		receipt, err = c.SubmitProject(ctx, f.Key, *f.Submission)
	default:
		return outcomeFailed
	}

	var herr *client.HTTPError
	switch {
	case err == nil && receipt.Duplicate:
		return outcomeDuplicate
	case err == nil:
		return outcomeAccepted
	case errors.As(err, &herr) && herr.StatusCode == http.StatusTooManyRequests:
		return outcomeThrottled
	default:
		logger.Get().Debug(ctx, "post failed", logger.String("key", f.Key), logger.Error(err))
		return outcomeFailed
	}
}
