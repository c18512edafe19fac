package submission

import (
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/validation"
)

// Type is the submission method.
type Type string

const (
	TypeRepository Type = "repository"
	TypeAssets     Type = "assets"
	TypeDemo       Type = "demo"
)

// Types returns the submission methods in display order.
func Types() []Type {
	return []Type{TypeRepository, TypeAssets, TypeDemo}
}

// ParseType maps a form value onto a Type. Unknown values select the repository.
func ParseType(v string) Type {
	if t, err := LookupType(v); err == nil {
		return t
	}
	return TypeRepository
}

// LookupType is the strict form of ParseType.
func LookupType(v string) (Type, error) {
	for _, t := range Types() {
		if string(t) == v {
			return t, nil
		}
	}
	return "", ErrUnknownType
}

// Title returns the card heading for t.
func (t Type) Title() string {
	switch t {
	case TypeAssets:
		return "Project Assets"
	case TypeDemo:
		return "Live Demo"
	default:
		return "Code Repository"
	}
}

// Blurb returns the card description for t.
func (t Type) Blurb() string {
	switch t {
	case TypeAssets:
		return "Upload your project files, documentation, and presentation"
	case TypeDemo:
		return "Provide links to your deployed application or demo video"
	default:
		return "Submit your GitHub, GitLab, or Bitbucket repository link"
	}
}

// Project is the common project information.
type Project struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Category     string `json:"category" validate:"omitempty,oneof=ai blockchain web mobile iot game ar-vr cybersecurity other"`
	Technologies string `json:"technologies" validate:"required"`
}

// Repository is the field subset for TypeRepository.
type Repository struct {
	URL               string `json:"repo_url" validate:"required,url"`
	Branch            string `json:"branch"`
	SetupInstructions string `json:"setup_instructions"`
}

// Assets is the field subset for TypeAssets. Only file names are kept.
type Assets struct {
	ProjectFiles  string   `json:"project_files" validate:"filext=.zip .rar"`
	Documentation string   `json:"documentation" validate:"filext=.pdf"`
	Slides        string   `json:"slides" validate:"filext=.pdf .pptx .ppt"`
	Screenshots   []string `json:"screenshots" validate:"max=5,dive,filext=.png .jpg .jpeg .gif .webp .svg"`
}

// Demo is the field subset for TypeDemo.
type Demo struct {
	DemoURL           string `json:"demo_url" validate:"omitempty,url"`
	VideoURL          string `json:"video_url" validate:"omitempty,url"`
	Credentials       string `json:"credentials"`
	UsageInstructions string `json:"usage_instructions"`
}

// DefaultBranch is prefilled on the repository subset.
const DefaultBranch = "main"

// Form holds every field of the submission page. Switching Type keeps the
// values of hidden subsets.
type Form struct {
	TeamCode   string
	Type       Type
	Project    Project
	Repository Repository
	Assets     Assets
	Demo       Demo
}

// NewForm returns a form with the repository subset selected.
func NewForm() *Form {
	return &Form{Type: TypeRepository, Repository: Repository{Branch: DefaultBranch}}
}

// SelectType switches the visible subset without clearing the others.
func (f *Form) SelectType(t Type) {
	f.Type = t
}

// Submission returns the payload for the visible subset only.
func (f *Form) Submission() Submission {
	s := Submission{TeamCode: f.TeamCode, Type: f.Type, Project: f.Project}
	switch f.Type {
	case TypeRepository:
		r := f.Repository
		if r.Branch == "" {
			r.Branch = DefaultBranch
		}
		s.Repository = &r
	case TypeAssets:
		a := f.Assets
		s.Assets = &a
	case TypeDemo:
		d := f.Demo
		s.Demo = &d
	}
	return s
}

// Submission is the payload handed to the outbox.
type Submission struct {
	TeamCode   string      `json:"team_code"`
	Type       Type        `json:"type"`
	Project    Project     `json:"project"`
	Repository *Repository `json:"repository,omitempty"`
	Assets     *Assets     `json:"assets,omitempty"`
	Demo       *Demo       `json:"demo,omitempty"`
}

// Validate checks the project information and the subset selected by Type.
func (s Submission) Validate() error {
	var subset any
	switch s.Type {
	case TypeRepository:
		if s.Repository == nil {
			return validation.Required("repository")
		}
		subset = s.Repository
	case TypeAssets:
		if s.Assets == nil {
			return validation.Required("assets")
		}
		subset = s.Assets
	case TypeDemo:
		if s.Demo == nil {
			return validation.Required("demo")
		}
		subset = s.Demo
	default:
		return ErrUnknownType
	}

	merged := map[string]string{}
	for _, v := range []any{s.Project, subset} {
		err := validation.Struct(v)
		if err == nil {
			continue
		}
		fields := validation.Fields(err)
		if fields == nil {
			return err
		}
		prefix := "project."
		if _, ok := v.(Project); !ok {
			prefix = string(s.Type) + "."
		}
		for k, msg := range fields {
			merged[prefix+k] = msg
		}
	}
	if len(merged) > 0 {
		return &validation.Error{Fields: merged}
	}
	return nil
}

// Confirmation is the notification shown after a successful submission.
func Confirmation() model.Notification {
	return model.Notification{
		Title:       "Project submitted successfully",
		Description: "Your project has been submitted for evaluation. You will receive feedback soon.",
	}
}

// CategoryOptions lists the project category select entries as value, label pairs.
func CategoryOptions() [][2]string {
	return [][2]string{
		{"ai", "AI/Machine Learning"},
		{"blockchain", "Blockchain"},
		{"web", "Web Application"},
		{"mobile", "Mobile Application"},
		{"iot", "IoT"},
		{"game", "Game Development"},
		{"ar-vr", "AR/VR"},
		{"cybersecurity", "Cybersecurity"},
		{"other", "Other"},
	}
}
