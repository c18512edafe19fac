package model

import "errors"

// Error kinds shared across layers so adapters can map them without
// importing each other.
var (
	ErrNotFound     = errors.New("not found")
	ErrBackpressure = errors.New("backpressure")
	ErrUnavailable  = errors.New("unavailable")
)
