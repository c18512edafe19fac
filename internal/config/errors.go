package config

import "errors"

// ErrInvalidConfig wraps every Validate failure; ErrLoadConfig wraps file,
// env and unmarshal failures in Load.
var (
	ErrInvalidConfig = errors.New("invalid portal config")
	ErrLoadConfig    = errors.New("load portal config")
)
