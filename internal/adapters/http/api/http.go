// Package api serves the JSON endpoints of the portal.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/spithack/internal/domain/validation"
	"github.com/okian/spithack/pkg/logger"
)

// maxBodyBytes bounds form posts.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Each handler depends on the
// narrowest slice of it.
type Dependencies interface {
	EventDependencies
	DirectoryDependencies
	FormDependencies
}

// Server wires HTTP routes for the JSON API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	eventsHandler    *EventsHandler
	directoryHandler *DirectoryHandler
	formsHandler     *FormsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		eventsHandler:    NewEventsHandler(deps),
		directoryHandler: NewDirectoryHandler(deps),
		formsHandler:     NewFormsHandler(deps, log.Named("api")),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /api/events", MetricsMiddleware(s.eventsHandler.HandleListEvents, "api_events"))
	mux.HandleFunc("GET /api/events/{id}", MetricsMiddleware(s.eventsHandler.HandleGetEvent, "api_event"))
	mux.HandleFunc("GET /api/teams", MetricsMiddleware(s.directoryHandler.HandleListTeams, "api_teams"))
	mux.HandleFunc("GET /api/individuals", MetricsMiddleware(s.directoryHandler.HandleListIndividuals, "api_individuals"))

	mux.HandleFunc("POST /api/registrations", MetricsMiddleware(s.formsHandler.HandlePostRegistration, "api_registrations"))
	mux.HandleFunc("POST /api/submissions", MetricsMiddleware(s.formsHandler.HandlePostSubmission, "api_submissions"))
	mux.HandleFunc("POST /api/team-codes/verify", MetricsMiddleware(s.formsHandler.HandleVerifyTeamCode, "api_team_codes"))
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError classifies err and writes the JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	msg := http.StatusText(status)
	if err != nil && status != http.StatusInternalServerError {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, Fields: validation.Fields(err)})
}
