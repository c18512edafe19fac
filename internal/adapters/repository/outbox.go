package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/pkg/metrics"
)

// Outbox keeps delivered forms in memory in delivery order. It stands in for
// the downstream form-processing service.
type Outbox struct {
	mu    sync.RWMutex
	items []model.Envelope
	byKey map[string]int
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{byKey: make(map[string]int)}
}

// Deliver appends e. It never fails.
func (o *Outbox) Deliver(_ context.Context, e model.Envelope) error {
	o.mu.Lock()
	o.items = append(o.items, e)
	o.byKey[e.ReceiptID] = len(o.items) - 1
	n := len(o.items)
	o.mu.Unlock()

	metrics.RecordOutboxDelivery(string(e.Kind), n)
	return nil
}

// Items returns a copy of every delivered envelope.
func (o *Outbox) Items() []model.Envelope {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.items)
}

// Get returns the envelope with the given receipt id.
func (o *Outbox) Get(receiptID string) (model.Envelope, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	i, ok := o.byKey[receiptID]
	if !ok {
		return model.Envelope{}, ErrNotFound
	}
	return o.items[i], nil
}

// Len returns the number of delivered envelopes.
func (o *Outbox) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.items)
}

// CountByKind returns the number of delivered envelopes per form kind.
func (o *Outbox) CountByKind() map[model.FormKind]int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[model.FormKind]int)
	for _, e := range o.items {
		out[e.Kind]++
	}
	return out
}
