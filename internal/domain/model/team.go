package model

import (
	"slices"
	"strconv"
)

// Member is a participant already on a team.
type Member struct {
	ID     string   `json:"id" koanf:"id"`
	Name   string   `json:"name" koanf:"name"`
	Role   string   `json:"role" koanf:"role"`
	Avatar string   `json:"avatar" koanf:"avatar"`
	Skills []string `json:"skills" koanf:"skills"`
}

// Initials returns the avatar fallback text: the first two characters of the name.
func (m Member) Initials() string {
	return initials(m.Name)
}

// Team is a team listed in the directory.
type Team struct {
	ID            string   `json:"id" koanf:"id"`
	Name          string   `json:"name" koanf:"name"`
	Members       []Member `json:"members" koanf:"members"`
	OpenPositions []string `json:"open_positions" koanf:"open_positions"`
	Description   string   `json:"description" koanf:"description"`
	LookingFor    string   `json:"looking_for" koanf:"looking_for"`
	Hackathon     string   `json:"hackathon" koanf:"hackathon"`
}

// OpenPositionsLabel renders the badge text, e.g. "1 Open Position" or "3 Open Positions".
func (t Team) OpenPositionsLabel() string {
	n := len(t.OpenPositions)
	if n == 1 {
		return "1 Open Position"
	}
	return strconv.Itoa(n) + " Open Positions"
}

// Clone returns a deep copy so callers cannot mutate shared fixtures.
func (t Team) Clone() Team {
	out := t
	out.OpenPositions = slices.Clone(t.OpenPositions)
	out.Members = make([]Member, len(t.Members))
	for i, m := range t.Members {
		m.Skills = slices.Clone(m.Skills)
		out.Members[i] = m
	}
	return out
}

// Individual is a participant looking for a team.
type Individual struct {
	ID         string   `json:"id" koanf:"id"`
	Name       string   `json:"name" koanf:"name"`
	Avatar     string   `json:"avatar" koanf:"avatar"`
	Skills     []string `json:"skills" koanf:"skills"`
	Experience string   `json:"experience" koanf:"experience"`
	Interests  string   `json:"interests" koanf:"interests"`
	Bio        string   `json:"bio" koanf:"bio"`
	LookingFor string   `json:"looking_for" koanf:"looking_for"`
}

// Initials returns the avatar fallback text.
func (i Individual) Initials() string {
	return initials(i.Name)
}

// Clone returns a deep copy.
func (i Individual) Clone() Individual {
	out := i
	out.Skills = slices.Clone(i.Skills)
	return out
}

func initials(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
