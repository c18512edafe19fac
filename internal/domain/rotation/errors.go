package rotation

import "errors"

var (
	ErrAlreadyStarted = errors.New("rotator already started")
	ErrStopped        = errors.New("rotator stopped")
)
