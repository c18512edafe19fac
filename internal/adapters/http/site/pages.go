package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
)

type heroView struct {
	Image   string
	Seconds int
}

type homeView struct {
	Hero     heroView
	Landing  model.Landing
	Upcoming []model.Event
}

func (s *Site) hero() heroView {
	return heroView{Image: s.deps.HeroImage(), Seconds: int(s.heroRefresh.Seconds())}
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	landing, err := s.deps.Landing(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	upcoming, err := s.deps.UpcomingEvents(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "home", "", http.StatusOK, page{
		Title: "Home",
		Nav:   "home",
		Body:  homeView{Hero: s.hero(), Landing: landing, Upcoming: upcoming},
	})
}

// handleHero returns the hero background fragment polled by the landing page.
func (s *Site) handleHero(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home", "hero-bg", http.StatusOK, page{Body: s.hero()})
}

type eventsView struct {
	Search     string
	Category   model.Category
	DateValue  string
	DateLabel  string
	Categories []model.Category
	Events     []model.Event
}

// eventFilter reads the listing query. Unknown categories and malformed dates
// are ignored rather than rejected.
func eventFilter(r *http.Request) (catalog.FilterState, string) {
	q := r.URL.Query()
	f := catalog.FilterState{Search: strings.TrimSpace(q.Get("q")), Category: model.CategoryAll}
	if c, err := catalog.ParseCategory(q.Get("category")); err == nil {
		f.Category = c
	}
	dateValue := ""
	if d, err := catalog.ParseDate(q.Get("date")); err == nil && !d.IsZero() {
		f.Date = d
		dateValue = d.Format(catalog.DateLayout)
	}
	return f, dateValue
}

func (s *Site) handleEvents(w http.ResponseWriter, r *http.Request) {
	f, dateValue := eventFilter(r)
	events, err := s.deps.Events(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v := eventsView{
		Search:     f.Search,
		Category:   f.Category,
		DateValue:  dateValue,
		Categories: catalog.Categories(),
		Events:     events,
	}
	if f.HasDate() {
		v.DateLabel = catalog.FormatDate(f.Date)
	}
	s.render(w, r, "events", "event-results", http.StatusOK, page{Title: "Events", Nav: "events", Body: v})
}

func (s *Site) handleEvent(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.Event(r.Context(), r.PathValue("id"))
	if errors.Is(err, model.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "event", "", http.StatusOK, page{Title: e.Title, Nav: "events", Body: e})
}

// Directory tabs.
const (
	tabTeams       = "teams"
	tabIndividuals = "individuals"
)

type teamsView struct {
	Tab         string
	Search      string
	Skill       string
	Skills      []directory.SkillOption
	Teams       []model.Team
	Individuals []model.Individual
}

func (s *Site) handleTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	f := directory.Filter{Search: strings.TrimSpace(q.Get("q")), Skill: q.Get("skill")}
	if f.AllSkills() {
		f.Skill = directory.SkillAll
	}
	tab := tabTeams
	if q.Get("tab") == tabIndividuals {
		tab = tabIndividuals
	}

	teams, err := s.deps.Teams(ctx, f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	individuals, err := s.deps.Individuals(ctx, f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v := teamsView{
		Tab:         tab,
		Search:      f.Search,
		Skill:       f.Skill,
		Skills:      directory.Skills(),
		Teams:       teams,
		Individuals: individuals,
	}
	s.render(w, r, "teams", "directory-results", http.StatusOK, page{Title: "Teams", Nav: "teams", Body: v})
}
