package service

import (
	"time"

	"github.com/okian/spithack/internal/adapters/repository"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of outbox workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize bounds the form queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize bounds the number of remembered idempotency keys.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithHeroInterval sets the landing page background rotation period.
func WithHeroInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.heroInterval = d
		}
	}
}

// WithFixtureFile loads records from path instead of the embedded fixtures.
func WithFixtureFile(path string) Option {
	return func(s *Service) {
		s.fixturesPath = path
	}
}

// WithStore replaces the fixture store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTeamRegistry replaces the placeholder team-code registry.
func WithTeamRegistry(r submission.TeamRegistry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
