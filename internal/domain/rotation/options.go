package rotation

import "time"

// Option configures a Rotator.
type Option func(*Rotator)

// WithInterval sets the rotation period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithOnAdvance registers a callback invoked from the rotation goroutine
// with the new index.
func WithOnAdvance(fn func(int)) Option {
	return func(r *Rotator) {
		r.onAdvance = fn
	}
}
