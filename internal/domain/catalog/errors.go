package catalog

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownCategory = errors.New("unknown category")
)
