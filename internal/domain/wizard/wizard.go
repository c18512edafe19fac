// Package wizard models the registration flow: a three step stepper for
// individuals and a create or join selector for teams.
package wizard

import (
	"github.com/okian/spithack/internal/domain/model"
)

// Step is a position in the individual registration flow.
type Step int

const (
	StepPersonal    Step = 1
	StepSkills      Step = 2
	StepPreferences Step = 3
	StepSubmitted   Step = 4
)

// Title returns the heading shown above the step's fields.
func (s Step) Title() string {
	switch s {
	case StepPersonal:
		return "Personal Information"
	case StepSkills:
		return "Skills & Experience"
	case StepPreferences:
		return "Hackathon Preferences"
	case StepSubmitted:
		return "Submitted"
	default:
		return ""
	}
}

// Mode is the top level registration tab.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeTeam       Mode = "team"
)

// TeamMode selects the field set shown on the team tab.
type TeamMode string

const (
	TeamModeCreate TeamMode = "create"
	TeamModeJoin   TeamMode = "join"
)

// Action is a visitor command posted by the registration page.
type Action string

const (
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionSubmit   Action = "submit"
)

// Wizard holds the state of one visitor's registration. It is not safe for
// concurrent use; every request restores its own copy.
type Wizard struct {
	step     Step
	mode     Mode
	teamMode TeamMode
}

// New returns a wizard on the first individual step with team creation preselected.
func New() *Wizard {
	return &Wizard{step: StepPersonal, mode: ModeIndividual, teamMode: TeamModeCreate}
}

// Restore rebuilds a wizard from values carried by the page.
func Restore(step Step, mode Mode, teamMode TeamMode) (*Wizard, error) {
	if step < StepPersonal || step > StepPreferences {
		return nil, ErrInvalidState
	}
	if mode != ModeIndividual && mode != ModeTeam {
		return nil, ErrInvalidState
	}
	if teamMode != TeamModeCreate && teamMode != TeamModeJoin {
		return nil, ErrInvalidState
	}
	return &Wizard{step: step, mode: mode, teamMode: teamMode}, nil
}

// Step returns the current individual step.
func (w *Wizard) Step() Step { return w.step }

// Mode returns the selected registration tab.
func (w *Wizard) Mode() Mode { return w.mode }

// TeamMode returns the selected team branch.
func (w *Wizard) TeamMode() TeamMode { return w.teamMode }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.step == StepSubmitted }

// Next advances the individual flow by one step. It never leaves step three;
// only Submit does.
func (w *Wizard) Next() error {
	if w.mode != ModeIndividual {
		return ErrInvalidTransition
	}
	return w.move(w.step + 1)
}

// Previous moves the individual flow back by one step.
func (w *Wizard) Previous() error {
	if w.mode != ModeIndividual {
		return ErrInvalidTransition
	}
	return w.move(w.step - 1)
}

// Submit finishes the flow and returns the confirmation to show. Individuals
// may only submit from the last step; either team branch submits directly.
func (w *Wizard) Submit() (model.Notification, error) {
	switch w.mode {
	case ModeIndividual:
		if err := w.transition(StepSubmitted); err != nil {
			return model.Notification{}, err
		}
	case ModeTeam:
		if w.Submitted() {
			return model.Notification{}, ErrInvalidTransition
		}
		w.step = StepSubmitted
	}
	return Confirmation(), nil
}

// Apply dispatches a posted action.
func (w *Wizard) Apply(a Action) (model.Notification, error) {
	switch a {
	case ActionNext:
		return model.Notification{}, w.Next()
	case ActionPrevious:
		return model.Notification{}, w.Previous()
	case ActionSubmit:
		return w.Submit()
	default:
		return model.Notification{}, ErrUnknownAction
	}
}

// SelectMode switches between the individual and team tabs. The individual
// step is kept so switching back resumes where the visitor left off.
func (w *Wizard) SelectMode(m Mode) error {
	if w.Submitted() {
		return ErrInvalidTransition
	}
	if m != ModeIndividual && m != ModeTeam {
		return ErrInvalidState
	}
	w.mode = m
	return nil
}

// SelectTeamMode swaps the team field set.
func (w *Wizard) SelectTeamMode(tm TeamMode) error {
	if w.Submitted() {
		return ErrInvalidTransition
	}
	if tm != TeamModeCreate && tm != TeamModeJoin {
		return ErrInvalidState
	}
	w.teamMode = tm
	return nil
}

// move is a stepper transition: both ends stay within the editable steps.
func (w *Wizard) move(to Step) error {
	if !editable(w.step) || !editable(to) {
		return ErrInvalidTransition
	}
	return w.transition(to)
}

func editable(s Step) bool {
	return s >= StepPersonal && s <= StepPreferences
}

func (w *Wizard) transition(to Step) error {
	if !isAllowedTransition(w.step, to) {
		return ErrInvalidTransition
	}
	w.step = to
	return nil
}

func isAllowedTransition(from, to Step) bool {
	switch from {
	case StepPersonal:
		return to == StepSkills
	case StepSkills:
		return to == StepPersonal || to == StepPreferences
	case StepPreferences:
		return to == StepSkills || to == StepSubmitted
	default:
		return false
	}
}

// Confirmation is the notification shown after any successful registration.
func Confirmation() model.Notification {
	return model.Notification{
		Title:       "Registration submitted",
		Description: "We've received your registration and will contact you soon.",
	}
}
