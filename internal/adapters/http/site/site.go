// Package site renders the portal pages.
//
// The document shell and shared chrome are templ components; page bodies are
// html/template files embedded in the binary. Requests issued by htmx get only the region they target.
package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/wizard"
	"github.com/okian/spithack/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// maxFormBytes bounds posted forms. Uploaded files are discarded after their
// names are read.
const maxFormBytes = 32 << 20

// Dependencies are the portal operations the pages use.
type Dependencies interface {
	Landing(ctx context.Context) (model.Landing, error)
	HeroImage() string
	UpcomingEvents(ctx context.Context) ([]model.Event, error)
	Events(ctx context.Context, f catalog.FilterState) ([]model.Event, error)
	Event(ctx context.Context, id string) (model.Event, error)
	Teams(ctx context.Context, f directory.Filter) ([]model.Team, error)
	Individuals(ctx context.Context, f directory.Filter) ([]model.Individual, error)
	VerifyTeamCode(ctx context.Context, code string) submission.Result
	SubmitRegistration(ctx context.Context, key string, reg wizard.Registration) (model.Receipt, error)
	SubmitProject(ctx context.Context, key string, sub submission.Submission) (model.Receipt, error)
}

// Site serves the HTML pages.
type Site struct {
	deps        Dependencies
	pages       map[string]*template.Template
	heroRefresh time.Duration
	logger      logger.Logger
}

// pageNames lists every page template; each defines "content".
var pageNames = []string{"home", "events", "event", "teams", "register", "submit", "notfound"}

// New parses the templates and returns a Site.
func New(deps Dependencies, opts ...Option) (*Site, error) {
	s := &Site{
		deps:        deps,
		heroRefresh: 5 * time.Second,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	base, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplates, err)
	}
	s.pages = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplates, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplates, name, err)
		}
		s.pages[name] = t
	}
	return s, nil
}

// Register attaches the page routes to mux.
func (s *Site) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /hero", s.handleHero)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /events/{id}", s.handleEvent)
	mux.HandleFunc("GET /teams", s.handleTeams)
	mux.HandleFunc("GET /register", s.handleRegisterPage)
	mux.HandleFunc("POST /register", s.handleRegisterPost)
	mux.HandleFunc("GET /submit", s.handleSubmitPage)
	mux.HandleFunc("POST /submit", s.handleSubmitPost)
	mux.HandleFunc("POST /submit/verify", s.handleVerify)
	mux.HandleFunc("/", s.handleNotFound)
}

// page is the data every layout render receives.
type page struct {
	Title        string
	Nav          string
	Notification *model.Notification
	Body         any
}

// render writes page name. fragment is executed instead of the layout for
// htmx requests when set.
func (s *Site) render(w http.ResponseWriter, r *http.Request, name, fragment string, status int, p page) {
	t, ok := s.pages[name]
	if !ok {
		s.logger.Error(r.Context(), "unknown page", logger.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	execute := func(entry string, data any) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
			return t.ExecuteTemplate(out, entry, data)
		})
	}
	component := layout(p, execute("content", p))
	if fragment != "" && isHTMX(r) {
		component = execute(fragment, p.Body)
	}

	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.logger.Error(r.Context(), "render page", logger.String("page", name), logger.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// fail renders a generic error page for unexpected dependency errors.
func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "page failed", logger.String("path", r.URL.Path), logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "notfound", "", http.StatusNotFound, page{Title: "Page not found"})
}

var funcs = template.FuncMap{
	"join":      strings.Join,
	"lower":     strings.ToLower,
	"add":       func(a, b int) int { return a + b },
	"contains":  slices.Contains[[]string, string],
	"input":     input,
	"choice":    choice,
	"personal":  personal,
	"eventCard": func(e model.Event) (template.HTML, error) { return inline(eventCard(e)) },
}
