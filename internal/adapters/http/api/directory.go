package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
)

// DirectoryDependencies reads the team-finding directory.
type DirectoryDependencies interface {
	Teams(ctx context.Context, f directory.Filter) ([]model.Team, error)
	Individuals(ctx context.Context, f directory.Filter) ([]model.Individual, error)
}

// DirectoryHandler handles team and individual listings.
type DirectoryHandler struct {
	deps DirectoryDependencies
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(deps DirectoryDependencies) *DirectoryHandler {
	return &DirectoryHandler{deps: deps}
}

// HandleListTeams handles GET /api/teams?q=&skill=.
func (h *DirectoryHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.deps.Teams(r.Context(), ParseDirectoryFilter(r))
	if err != nil {
		writeError(w, Wrap("api.list_teams", err))
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleListIndividuals handles GET /api/individuals?q=&skill=.
func (h *DirectoryHandler) HandleListIndividuals(w http.ResponseWriter, r *http.Request) {
	people, err := h.deps.Individuals(r.Context(), ParseDirectoryFilter(r))
	if err != nil {
		writeError(w, Wrap("api.list_individuals", err))
		return
	}
	writeJSON(w, http.StatusOK, people)
}

// ParseDirectoryFilter reads the q and skill query parameters. Unknown
// skills simply match nothing.
func ParseDirectoryFilter(r *http.Request) directory.Filter {
	q := r.URL.Query()
	return directory.Filter{
		Search: strings.TrimSpace(q.Get("q")),
		Skill:  q.Get("skill"),
	}
}
