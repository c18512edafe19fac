package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/validation"
	"github.com/okian/spithack/internal/domain/wizard"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrBackpressure = model.ErrBackpressure
	ErrNotFound     = model.ErrNotFound
	ErrUnavailable  = model.ErrUnavailable
)

// opError annotates a kind with the operation that produced it and the
// underlying cause. Both the kind and the cause match errors.Is.
type opError struct {
	op    string
	kind  error
	cause error
}

func (e *opError) Error() string {
	if e.cause == nil {
		return e.op + ": " + e.kind.Error()
	}
	return e.op + ": " + e.kind.Error() + ": " + e.cause.Error()
}

func (e *opError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Wrap prefixes err with op. It returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind classifies cause as kind under op.
func WrapKind(op string, kind, cause error) error {
	return &opError{op: op, kind: kind, cause: cause}
}

// NewKind reports kind under op with no further cause.
func NewKind(op string, kind error) error {
	return &opError{op: op, kind: kind}
}

// classify maps an error to an HTTP status and a stable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, model.ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, model.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, catalog.ErrInvalidDate),
		errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, wizard.ErrUnknownKind),
		errors.Is(err, submission.ErrUnknownType):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
