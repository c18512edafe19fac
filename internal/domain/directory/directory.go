// Package directory filters the team finder lists.
package directory

import (
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/textmatch"
)

// SkillAll disables skill filtering. An empty skill behaves the same.
const SkillAll = "all"

// Filter is the visitor's current selection on the teams page.
type Filter struct {
	Search string
	Skill  string
}

// AllSkills reports whether f leaves the skill predicate open. The sentinel
// is matched exactly; "ALL" is an ordinary skill name.
func (f Filter) AllSkills() bool {
	return f.Skill == "" || f.Skill == SkillAll
}

// SkillOption is one entry of the skill selector.
type SkillOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Skills returns the selectable skills in display order.
func Skills() []SkillOption {
	return []SkillOption{
		{Value: SkillAll, Label: "All Skills"},
		{Value: "Frontend", Label: "Frontend"},
		{Value: "Backend", Label: "Backend"},
		{Value: "UI/UX", Label: "UI/UX Design"},
		{Value: "Blockchain", Label: "Blockchain"},
		{Value: "AI/ML", Label: "AI/ML"},
		{Value: "Mobile", Label: "Mobile Development"},
		{Value: "DevOps", Label: "DevOps"},
		{Value: "Data Science", Label: "Data Science"},
	}
}

// FilterTeams returns teams whose name or description contains the search
// term and that have a member with the selected skill.
func FilterTeams(teams []model.Team, f Filter) []model.Team {
	out := make([]model.Team, 0, len(teams))
	for _, t := range teams {
		if !textmatch.ContainsAny(f.Search, t.Name, t.Description) {
			continue
		}
		if !f.AllSkills() && !teamHasSkill(t, f.Skill) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterIndividuals returns individuals whose name or bio contains the search
// term and who list the selected skill.
func FilterIndividuals(individuals []model.Individual, f Filter) []model.Individual {
	out := make([]model.Individual, 0, len(individuals))
	for _, ind := range individuals {
		if !textmatch.ContainsAny(f.Search, ind.Name, ind.Bio) {
			continue
		}
		if !f.AllSkills() && !hasSkill(ind.Skills, f.Skill) {
			continue
		}
		out = append(out, ind)
	}
	return out
}

func teamHasSkill(t model.Team, skill string) bool {
	for _, m := range t.Members {
		if hasSkill(m.Skills, skill) {
			return true
		}
	}
	return false
}

func hasSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if textmatch.Equal(s, skill) {
			return true
		}
	}
	return false
}
