package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/model"
)

// EventDependencies reads the event catalog.
type EventDependencies interface {
	Events(ctx context.Context, f catalog.FilterState) ([]model.Event, error)
	Event(ctx context.Context, id string) (model.Event, error)
}

// EventsHandler handles event requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleListEvents handles GET /api/events?q=&category=&date=YYYY-MM-DD.
func (h *EventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_events"
	f, err := ParseEventFilter(r)
	if err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	events, err := h.deps.Events(r.Context(), f)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleGetEvent handles GET /api/events/{id}.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_event"
	id := r.PathValue("id")
	if id == "" {
		writeError(w, NewKind(op, ErrBadRequest))
		return
	}
	e, err := h.deps.Event(r.Context(), id)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// ParseEventFilter reads the q, category and date query parameters.
func ParseEventFilter(r *http.Request) (catalog.FilterState, error) {
	q := r.URL.Query()
	f := catalog.FilterState{Search: strings.TrimSpace(q.Get("q"))}

	c, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		return f, err
	}
	f.Category = c

	if v := q.Get("date"); v != "" {
		d, err := catalog.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.Date = d
	}
	return f, nil
}
