package wizard

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrInvalidState      = errors.New("invalid wizard state")
	ErrUnknownAction     = errors.New("unknown wizard action")
	ErrUnknownKind       = errors.New("unknown registration kind")
)
