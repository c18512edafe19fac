// Package rotation cycles the landing page background image.
package rotation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is how long each image stays up.
const DefaultInterval = 5 * time.Second

// Rotator advances an index over a fixed list of items on a timer. Start and
// Stop bracket its lifetime; no update happens after Stop returns.
type Rotator struct {
	items     []string
	interval  time.Duration
	onAdvance func(int)

	index atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// New creates a rotator over items. It does not start ticking until Start.
func New(items []string, opts ...Option) *Rotator {
	r := &Rotator{
		items:    append([]string(nil), items...),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the ticking goroutine. Calling Start on a running or
// stopped rotator returns ErrAlreadyStarted or ErrStopped.
func (r *Rotator) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if r.cancel != nil {
		return ErrAlreadyStarted
	}
	if len(r.items) < 2 {
		// nothing to rotate
		r.cancel = func() {}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
	return nil
}

func (r *Rotator) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Re-check after waking so a Stop racing with the tick wins.
			if ctx.Err() != nil {
				return
			}
			next := int((r.index.Load() + 1) % int64(len(r.items)))
			r.index.Store(int64(next))
			if r.onAdvance != nil {
				r.onAdvance(next)
			}
		}
	}
}

// Stop halts rotation and waits for the goroutine to exit. It is safe to
// call more than once and before Start.
func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.stopped = true
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Index returns the position of the current item.
func (r *Rotator) Index() int {
	return int(r.index.Load())
}

// Current returns the current item, or "" when there are none.
func (r *Rotator) Current() string {
	if len(r.items) == 0 {
		return ""
	}
	return r.items[r.Index()]
}

// Items returns the rotated items starting at the current one, so a page can
// render the active image first.
func (r *Rotator) Items() []string {
	n := len(r.items)
	out := make([]string, 0, n)
	start := r.Index()
	for i := 0; i < n; i++ {
		out = append(out, r.items[(start+i)%n])
	}
	return out
}
