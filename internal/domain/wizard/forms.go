package wizard

import (
	"github.com/okian/spithack/internal/domain/validation"
)

// Personal is the step one field set, also used by team leaders and joiners.
type Personal struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Institution string `json:"institution" validate:"required"`
}

// SkillsInfo is the step two field set.
type SkillsInfo struct {
	PrimarySkill string `json:"primary_skill" validate:"omitempty,oneof=frontend backend fullstack mobile ui-ux data-science ai-ml devops blockchain cybersecurity"`
	Experience   string `json:"experience" validate:"omitempty,oneof=beginner intermediate expert"`
	Portfolio    string `json:"portfolio" validate:"omitempty,url"`
	GitHub       string `json:"github" validate:"omitempty,url"`
	Bio          string `json:"bio"`
}

// Preferences is the step three field set.
type Preferences struct {
	Track          string `json:"track" validate:"omitempty,oneof=ai blockchain iot web3 gaming fintech healthcare sustainability edtech open"`
	TeamPreference string `json:"team_preference" validate:"omitempty,oneof=find-team solo"`
	Dietary        string `json:"dietary"`
	TShirtSize     string `json:"tshirt_size" validate:"omitempty,oneof=xs s m l xl xxl"`
	TermsAccepted  bool   `json:"terms_accepted" validate:"required"`
}

// IndividualRegistration is everything collected by the three step flow.
type IndividualRegistration struct {
	Personal    Personal    `json:"personal"`
	Skills      SkillsInfo  `json:"skills"`
	Preferences Preferences `json:"preferences"`
}

// TeamCreation registers a new team and its leader.
type TeamCreation struct {
	TeamName        string   `json:"team_name" validate:"required"`
	TeamDescription string   `json:"team_description"`
	TeamSize        int      `json:"team_size" validate:"min=2,max=5"`
	Leader          Personal `json:"leader"`
}

// TeamJoin adds a participant to an existing team by invitation code.
type TeamJoin struct {
	TeamCode      string   `json:"team_code" validate:"required"`
	Personal      Personal `json:"personal"`
	PrimarySkill  string   `json:"primary_skill" validate:"omitempty,oneof=frontend backend fullstack mobile ui-ux data-science ai-ml devops blockchain cybersecurity"`
	TermsAccepted bool     `json:"terms_accepted" validate:"required"`
}

// Kind selects which registration body is present.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindTeamCreate Kind = "team-create"
	KindTeamJoin   Kind = "team-join"
)

// Registration is the payload handed to the outbox.
type Registration struct {
	Kind       Kind                    `json:"kind"`
	Individual *IndividualRegistration `json:"individual,omitempty"`
	TeamCreate *TeamCreation           `json:"team_create,omitempty"`
	TeamJoin   *TeamJoin               `json:"team_join,omitempty"`
}

// ApplyDefaults fills the values preselected on the form.
func (r *Registration) ApplyDefaults() {
	if r.Individual != nil {
		if r.Individual.Skills.Experience == "" {
			r.Individual.Skills.Experience = "intermediate"
		}
		if r.Individual.Preferences.TeamPreference == "" {
			r.Individual.Preferences.TeamPreference = "find-team"
		}
	}
	if r.TeamCreate != nil && r.TeamCreate.TeamSize == 0 {
		r.TeamCreate.TeamSize = DefaultTeamSize
	}
}

// DefaultTeamSize is preselected on the team creation form.
const DefaultTeamSize = 4

// Validate checks that the body matching Kind is present and complete.
// Bodies for other kinds are ignored.
func (r Registration) Validate() error {
	switch r.Kind {
	case KindIndividual:
		if r.Individual == nil {
			return validation.Required("individual")
		}
		return validation.Struct(r.Individual)
	case KindTeamCreate:
		if r.TeamCreate == nil {
			return validation.Required("team_create")
		}
		return validation.Struct(r.TeamCreate)
	case KindTeamJoin:
		if r.TeamJoin == nil {
			return validation.Required("team_join")
		}
		return validation.Struct(r.TeamJoin)
	default:
		return ErrUnknownKind
	}
}

// Normalize drops bodies that do not belong to Kind.
func (r Registration) Normalize() Registration {
	out := Registration{Kind: r.Kind}
	switch r.Kind {
	case KindIndividual:
		out.Individual = r.Individual
	case KindTeamCreate:
		out.TeamCreate = r.TeamCreate
	case KindTeamJoin:
		out.TeamJoin = r.TeamJoin
	}
	return out
}

// ValidateStep checks only the fields shown on step s. Steps without
// required fields always pass.
func ValidateStep(s Step, reg IndividualRegistration) error {
	switch s {
	case StepPersonal:
		return validation.Struct(reg.Personal)
	case StepSkills:
		return validation.Struct(reg.Skills)
	case StepPreferences:
		return validation.Struct(reg.Preferences)
	default:
		return ErrInvalidState
	}
}

// Option is a select or radio entry.
type Option struct {
	Value string
	Label string
}

// SkillOptions lists the primary skill select entries.
func SkillOptions() []Option {
	return []Option{
		{"frontend", "Frontend Development"},
		{"backend", "Backend Development"},
		{"fullstack", "Full Stack Development"},
		{"mobile", "Mobile Development"},
		{"ui-ux", "UI/UX Design"},
		{"data-science", "Data Science"},
		{"ai-ml", "AI/ML"},
		{"devops", "DevOps"},
		{"blockchain", "Blockchain"},
		{"cybersecurity", "Cybersecurity"},
	}
}

// ExperienceOptions lists the experience radio entries.
func ExperienceOptions() []Option {
	return []Option{
		{"beginner", "Beginner"},
		{"intermediate", "Intermediate"},
		{"expert", "Expert"},
	}
}

// TrackOptions lists the preferred track select entries.
func TrackOptions() []Option {
	return []Option{
		{"ai", "Artificial Intelligence"},
		{"blockchain", "Blockchain"},
		{"iot", "Internet of Things"},
		{"web3", "Web 3.0"},
		{"gaming", "Game Development"},
		{"fintech", "FinTech"},
		{"healthcare", "Healthcare"},
		{"sustainability", "Sustainability"},
		{"edtech", "EdTech"},
		{"open", "Open Innovation"},
	}
}

// TeamPreferenceOptions lists the team preference radio entries.
func TeamPreferenceOptions() []Option {
	return []Option{
		{"find-team", "Find a Team"},
		{"solo", "Participate Solo"},
	}
}

// TShirtOptions lists the T-shirt size select entries.
func TShirtOptions() []Option {
	return []Option{
		{"xs", "XS"}, {"s", "S"}, {"m", "M"}, {"l", "L"}, {"xl", "XL"}, {"xxl", "XXL"},
	}
}

// TeamSizeOptions lists the team size select entries.
func TeamSizeOptions() []Option {
	return []Option{
		{"2", "2 Members"}, {"3", "3 Members"}, {"4", "4 Members"}, {"5", "5 Members"},
	}
}
