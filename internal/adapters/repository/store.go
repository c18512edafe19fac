// Package repository holds the read-only portal records and the form outbox.
package repository

import (
	"context"

	"github.com/okian/spithack/internal/domain/model"
)

// Store provides read access to the portal records. Implementations return
// copies so callers cannot alter shared state.
type Store interface {
	Events(ctx context.Context) []model.Event

	// Event returns ErrNotFound for unknown ids.
	Event(ctx context.Context, id string) (model.Event, error)

	Teams(ctx context.Context) []model.Team
	Individuals(ctx context.Context) []model.Individual
	Landing(ctx context.Context) model.Landing
}
