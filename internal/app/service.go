// Package service composes the portal: read-only records, filtering, the hero
// rotation and the form outbox. It implements the dependencies of the HTTP
// adapters.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/spithack/internal/adapters/mq/queue"
	"github.com/okian/spithack/internal/adapters/mq/worker"
	"github.com/okian/spithack/internal/adapters/repository"
	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/dedupe"
	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/rotation"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/pkg/logger"
	"github.com/okian/spithack/pkg/metrics"
)

// UpcomingCount is how many events the landing page lists.
const UpcomingCount = 3

const stopTimeout = 10 * time.Second

// Service implements the portal operations.
type Service struct {
	mu sync.RWMutex

	store     repository.Store
	outbox    *repository.Outbox
	deduper   dedupe.Deduper
	formQueue *queue.InMemoryQueue
	pool      *worker.Pool
	stopPool  context.CancelFunc
	rotator   *rotation.Rotator
	registry  submission.TeamRegistry

	workerCount  int
	queueSize    int
	dedupeSize   int
	heroInterval time.Duration
	fixturesPath string

	started bool
	logger  logger.Logger
}

// New constructs a Service. Components are created by Start.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:  runtime.NumCPU(),
		queueSize:    1024,
		dedupeSize:   10_000,
		heroInterval: rotation.DefaultInterval,
		registry:     submission.NewPlaceholderRegistry(),
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the records and starts the rotator and the worker pool.
// Starting a running service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting portal service...")

	if s.store == nil {
		var opts []repository.Option
		if s.fixturesPath != "" {
			opts = append(opts, repository.WithFixtureFile(s.fixturesPath))
		}
		store, err := repository.NewFixtureStore(opts...)
		if err != nil {
			return fmt.Errorf("start service: %w", err)
		}
		s.store = store
	}

	s.outbox = repository.NewOutbox()
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.formQueue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.formQueue, s.outbox, worker.WithLogger(s.logger))
	// Accepted forms outlive the caller's context; Stop drains them.
	poolCtx, stopPool := context.WithCancel(context.WithoutCancel(ctx))
	s.stopPool = stopPool
	s.pool.Start(poolCtx)

	s.rotator = rotation.New(s.store.Landing(ctx).HeroImages,
		rotation.WithInterval(s.heroInterval),
		rotation.WithOnAdvance(metrics.RecordHeroRotation),
	)
	if err := s.rotator.Start(ctx); err != nil {
		stopPool()
		return fmt.Errorf("start hero rotation: %w", err)
	}

	s.started = true
	s.logger.Info(ctx, "portal service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queue_size", s.queueSize),
		logger.Int("dedupe_size", s.dedupeSize),
		logger.Duration("hero_interval", s.heroInterval),
	)
	return nil
}

// Stop halts the rotation and drains the form queue into the outbox.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping portal service...")

	s.rotator.Stop()
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Error(ctx, "worker pool shutdown", logger.Error(err))
	}
	s.stopPool()

	s.started = false
	s.logger.Info(ctx, "portal service stopped", logger.Int("delivered", s.outbox.Len()))
}

// readStore returns the store or ErrNotStarted.
func (s *Service) readStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Events returns the events matching f in listing order.
func (s *Service) Events(ctx context.Context, f catalog.FilterState) ([]model.Event, error) {
	store, err := s.readStore()
	if err != nil {
		return nil, err
	}
	out := catalog.Filter(store.Events(ctx), f)
	metrics.RecordFilter("events", f.Active(), len(out))
	return out, nil
}

// Event returns one event by id.
func (s *Service) Event(ctx context.Context, id string) (model.Event, error) {
	store, err := s.readStore()
	if err != nil {
		return model.Event{}, err
	}
	return store.Event(ctx, id)
}

// UpcomingEvents returns the first UpcomingCount events.
func (s *Service) UpcomingEvents(ctx context.Context) ([]model.Event, error) {
	store, err := s.readStore()
	if err != nil {
		return nil, err
	}
	events := store.Events(ctx)
	if len(events) > UpcomingCount {
		events = events[:UpcomingCount]
	}
	return events, nil
}

// Teams returns the teams matching f.
func (s *Service) Teams(ctx context.Context, f directory.Filter) ([]model.Team, error) {
	store, err := s.readStore()
	if err != nil {
		return nil, err
	}
	out := directory.FilterTeams(store.Teams(ctx), f)
	metrics.RecordFilter("teams", f.Search != "" || !f.AllSkills(), len(out))
	return out, nil
}

// Individuals returns the individuals matching f.
func (s *Service) Individuals(ctx context.Context, f directory.Filter) ([]model.Individual, error) {
	store, err := s.readStore()
	if err != nil {
		return nil, err
	}
	out := directory.FilterIndividuals(store.Individuals(ctx), f)
	metrics.RecordFilter("individuals", f.Search != "" || !f.AllSkills(), len(out))
	return out, nil
}

// Landing returns the landing page copy with the hero images ordered from the
// currently displayed one.
func (s *Service) Landing(ctx context.Context) (model.Landing, error) {
	store, err := s.readStore()
	if err != nil {
		return model.Landing{}, err
	}
	l := store.Landing(ctx)

	s.mu.RLock()
	r := s.rotator
	s.mu.RUnlock()
	if r != nil {
		l.HeroImages = r.Items()
	}
	return l, nil
}

// HeroImage returns the background image currently displayed.
func (s *Service) HeroImage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rotator == nil {
		return ""
	}
	return s.rotator.Current()
}

// VerifyTeamCode checks a team code. An invalid code is a normal result, not an error.
func (s *Service) VerifyTeamCode(ctx context.Context, code string) submission.Result {
	res := s.registry.Verify(ctx, code)
	metrics.RecordTeamCodeVerification(res.Valid)
	s.logger.Debug(ctx, "team code verified", logger.Bool("valid", res.Valid))
	return res
}

// Outbox returns the delivered forms, or nil before Start.
func (s *Service) Outbox() *repository.Outbox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outbox
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		queueLen := s.formQueue.Len(ctx)
		stats["queueLength"] = queueLen
		stats["delivered"] = s.pool.Delivered()
		stats["outbox"] = s.outbox.CountByKind()
		stats["idempotencyKeys"] = s.deduper.Size()
		stats["heroIndex"] = s.rotator.Index()
		stats["events"] = len(s.store.Events(ctx))
		stats["teams"] = len(s.store.Teams(ctx))
		stats["individuals"] = len(s.store.Individuals(ctx))

		metrics.UpdateQueueSize(queueLen)
	}

	return stats
}
