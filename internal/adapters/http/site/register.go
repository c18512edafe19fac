package site

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/validation"
	"github.com/okian/spithack/internal/domain/wizard"
	"github.com/okian/spithack/pkg/metrics"
)

// busy is shown when the form queue rejects a post.
var busy = model.Notification{
	Title:       "Please try again",
	Description: "We're receiving a lot of submissions right now. Your details are still on this page.",
	Destructive: true,
}

type registerView struct {
	Step      wizard.Step
	Mode      wizard.Mode
	TeamMode  wizard.TeamMode
	Submitted bool
	Key       string
	Receipt   string
	Errors    map[string]string

	Individual wizard.IndividualRegistration
	Create     wizard.TeamCreation
	Join       wizard.TeamJoin

	Steps           []wizard.Step
	Skills          []wizard.Option
	Experience      []wizard.Option
	Tracks          []wizard.Option
	TeamPreferences []wizard.Option
	TShirts         []wizard.Option
	TeamSizes       []wizard.Option
}

// TeamSizeValue is the selected team size as a select value.
func (v registerView) TeamSizeValue() string {
	return strconv.Itoa(v.Create.TeamSize)
}

func newRegisterView(w *wizard.Wizard) registerView {
	return registerView{
		Step:            w.Step(),
		Mode:            w.Mode(),
		TeamMode:        w.TeamMode(),
		Submitted:       w.Submitted(),
		Steps:           []wizard.Step{wizard.StepPersonal, wizard.StepSkills, wizard.StepPreferences},
		Skills:          wizard.SkillOptions(),
		Experience:      wizard.ExperienceOptions(),
		Tracks:          wizard.TrackOptions(),
		TeamPreferences: wizard.TeamPreferenceOptions(),
		TShirts:         wizard.TShirtOptions(),
		TeamSizes:       wizard.TeamSizeOptions(),
	}
}

func (v *registerView) sync(w *wizard.Wizard) {
	v.Step, v.Mode, v.TeamMode, v.Submitted = w.Step(), w.Mode(), w.TeamMode(), w.Submitted()
}

// registration builds the payload for the visible branch.
func (v registerView) registration() wizard.Registration {
	switch {
	case v.Mode == wizard.ModeIndividual:
		ind := v.Individual
		return wizard.Registration{Kind: wizard.KindIndividual, Individual: &ind}
	case v.TeamMode == wizard.TeamModeJoin:
		join := v.Join
		return wizard.Registration{Kind: wizard.KindTeamJoin, TeamJoin: &join}
	default:
		create := v.Create
		return wizard.Registration{Kind: wizard.KindTeamCreate, TeamCreate: &create}
	}
}

func (s *Site) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	wz := wizard.New()
	q := r.URL.Query()
	if m := wizard.Mode(q.Get("mode")); m != "" {
		_ = wz.SelectMode(m)
	}
	if tm := wizard.TeamMode(q.Get("team")); tm != "" {
		_ = wz.SelectTeamMode(tm)
	}

	v := newRegisterView(wz)
	v.Key = uuid.NewString()
	reg := wizard.Registration{Individual: &v.Individual, TeamCreate: &v.Create}
	reg.ApplyDefaults()

	s.render(w, r, "register", "", http.StatusOK, page{Title: "Register", Nav: "register", Body: v})
}

func (s *Site) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := r.PostForm

	step, _ := strconv.Atoi(form.Get("step"))
	wz, err := wizard.Restore(wizard.Step(step), wizard.Mode(form.Get("mode")), wizard.TeamMode(form.Get("team_mode")))
	if err != nil {
		metrics.RecordWizardTransition("restore", "invalid_state")
		wz = wizard.New()
	}
	v := newRegisterView(wz)
	readRegistration(form, &v)

	var (
		note    *model.Notification
		status  = http.StatusOK
		outcome = "ok"
	)

	verb, arg, _ := strings.Cut(form.Get("action"), ":")
	switch verb {
	case "mode":
		err = wz.SelectMode(wizard.Mode(arg))
	case "team":
		err = wz.SelectTeamMode(wizard.TeamMode(arg))
	case string(wizard.ActionNext):
		if verr := wizard.ValidateStep(wz.Step(), v.Individual); verr != nil {
			v.Errors = stepErrors(wz.Step(), verr)
			outcome, status = "invalid", http.StatusUnprocessableEntity
			break
		}
		err = wz.Next()
	case string(wizard.ActionPrevious):
		err = wz.Previous()
	case string(wizard.ActionSubmit):
		if wz.Mode() == wizard.ModeIndividual && wz.Step() != wizard.StepPreferences {
			err = wizard.ErrInvalidTransition
			break
		}
		receipt, serr := s.deps.SubmitRegistration(r.Context(), v.Key, v.registration())
		switch {
		case serr == nil:
			if _, err = wz.Submit(); err == nil {
				v.Receipt = receipt.ID
				note = &receipt.Notification
			}
		case errors.Is(serr, validation.ErrInvalid):
			v.Errors = validation.Fields(serr)
			outcome, status = "invalid", http.StatusUnprocessableEntity
		case errors.Is(serr, model.ErrBackpressure):
			note = &busy
			outcome, status = "rejected", http.StatusTooManyRequests
		default:
			s.fail(w, r, serr)
			return
		}
	default:
		err = wizard.ErrUnknownAction
	}
	if err != nil {
		outcome, status = "invalid_transition", http.StatusBadRequest
	}
	metrics.RecordWizardTransition(verb, outcome)

	v.sync(wz)
	s.render(w, r, "register", "", status, page{Title: "Register", Nav: "register", Notification: note, Body: v})
}

// stepErrors keys step validation errors the way whole-registration errors are keyed.
func stepErrors(step wizard.Step, err error) map[string]string {
	fields := validation.Fields(err)
	if fields == nil {
		return nil
	}
	prefix := map[wizard.Step]string{
		wizard.StepPersonal:    "personal.",
		wizard.StepSkills:      "skills.",
		wizard.StepPreferences: "preferences.",
	}[step]
	out := make(map[string]string, len(fields))
	for k, msg := range fields {
		out[prefix+k] = msg
	}
	return out
}

func readRegistration(form url.Values, v *registerView) {
	get := func(name string) string { return strings.TrimSpace(form.Get(name)) }
	checked := func(name string) bool {
		switch form.Get(name) {
		case "on", "true", "1":
			return true
		}
		return false
	}
	personal := func(prefix string) wizard.Personal {
		return wizard.Personal{
			FirstName:   get(prefix + "first_name"),
			LastName:    get(prefix + "last_name"),
			Email:       get(prefix + "email"),
			Phone:       get(prefix + "phone"),
			Institution: get(prefix + "institution"),
		}
	}

	v.Key = get("idempotency_key")
	if v.Key == "" {
		v.Key = uuid.NewString()
	}

	v.Individual = wizard.IndividualRegistration{
		Personal: personal(""),
		Skills: wizard.SkillsInfo{
			PrimarySkill: get("primary_skill"),
			Experience:   get("experience"),
			Portfolio:    get("portfolio"),
			GitHub:       get("github"),
			Bio:          get("bio"),
		},
		Preferences: wizard.Preferences{
			Track:          get("track"),
			TeamPreference: get("team_preference"),
			Dietary:        get("dietary"),
			TShirtSize:     get("tshirt_size"),
			TermsAccepted:  checked("terms_accepted"),
		},
	}

	size, _ := strconv.Atoi(get("team_size"))
	v.Create = wizard.TeamCreation{
		TeamName:        get("team_name"),
		TeamDescription: get("team_description"),
		TeamSize:        size,
		Leader:          personal("leader_"),
	}

	v.Join = wizard.TeamJoin{
		TeamCode:      get("team_code"),
		Personal:      personal("join_"),
		PrimarySkill:  get("join_primary_skill"),
		TermsAccepted: checked("join_terms_accepted"),
	}
}
