package service

import (
	"fmt"

	"github.com/okian/spithack/internal/adapters/repository"
	"github.com/okian/spithack/internal/domain/model"
)

// Sentinel error kinds returned by the Service.
var (
	ErrNotStarted   = fmt.Errorf("service not started: %w", model.ErrUnavailable)
	ErrBackpressure = fmt.Errorf("form queue full: %w", model.ErrBackpressure)
	ErrNotFound     = repository.ErrNotFound
)
