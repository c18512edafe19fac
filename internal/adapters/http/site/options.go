package site

import (
	"time"

	"github.com/okian/spithack/pkg/logger"
)

// Option applies a configuration option to the Site.
type Option func(*Site)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHeroRefresh sets how often the landing page polls for the hero image.
func WithHeroRefresh(d time.Duration) Option {
	return func(s *Site) {
		if d >= time.Second {
			s.heroRefresh = d
		}
	}
}
