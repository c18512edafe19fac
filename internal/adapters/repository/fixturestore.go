package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/pkg/metrics"
)

//go:embed fixtures/portal.yaml
var fixtureFS embed.FS

const defaultFixture = "fixtures/portal.yaml"

// FixtureStore serves records loaded once from YAML.
type FixtureStore struct {
	events      []model.Event
	byID        map[string]int
	teams       []model.Team
	individuals []model.Individual
	landing     model.Landing

	path string
}

// fixtures mirrors the YAML document layout.
type fixtures struct {
	Landing     model.Landing      `koanf:"landing"`
	Events      []model.Event      `koanf:"events"`
	Teams       []model.Team       `koanf:"teams"`
	Individuals []model.Individual `koanf:"individuals"`
}

// NewFixtureStore loads the embedded fixtures, or the file given by WithFixtureFile.
func NewFixtureStore(opts ...Option) (*FixtureStore, error) {
	s := &FixtureStore{}
	for _, opt := range opts {
		opt(s)
	}

	k := koanf.New(".")
	var err error
	if s.path != "" {
		err = k.Load(file.Provider(s.path), yaml.Parser())
	} else {
		err = k.Load(embeddedProvider{name: defaultFixture}, yaml.Parser())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFixtures, err)
	}

	var fx fixtures
	if err := k.UnmarshalWithConf("", &fx, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFixtures, err)
	}

	s.byID = make(map[string]int, len(fx.Events))
	for i, e := range fx.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: event %d has no id", ErrLoadFixtures, i)
		}
		if _, dup := s.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate event id %q", ErrLoadFixtures, e.ID)
		}
		s.byID[e.ID] = i
	}
	s.events = fx.Events
	s.teams = fx.Teams
	s.individuals = fx.Individuals
	s.landing = fx.Landing

	metrics.UpdateCatalogRecords("events", len(s.events))
	metrics.UpdateCatalogRecords("teams", len(s.teams))
	metrics.UpdateCatalogRecords("individuals", len(s.individuals))
	return s, nil
}

func (s *FixtureStore) Events(context.Context) []model.Event {
	return slices.Clone(s.events)
}

func (s *FixtureStore) Event(_ context.Context, id string) (model.Event, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	return s.events[i], nil
}

func (s *FixtureStore) Teams(context.Context) []model.Team {
	out := make([]model.Team, len(s.teams))
	for i, t := range s.teams {
		out[i] = t.Clone()
	}
	return out
}

func (s *FixtureStore) Individuals(context.Context) []model.Individual {
	out := make([]model.Individual, len(s.individuals))
	for i, ind := range s.individuals {
		out[i] = ind.Clone()
	}
	return out
}

func (s *FixtureStore) Landing(context.Context) model.Landing {
	l := s.landing
	l.HeroImages = slices.Clone(l.HeroImages)
	l.Stats = slices.Clone(l.Stats)
	l.Features = slices.Clone(l.Features)
	return l
}

// embeddedProvider feeds a file from fixtureFS to koanf.
type embeddedProvider struct {
	name string
}

func (p embeddedProvider) ReadBytes() ([]byte, error) {
	return fixtureFS.ReadFile(p.name)
}

func (p embeddedProvider) Read() (map[string]any, error) {
	return nil, errors.New("embedded provider does not support Read")
}
