package wizard

import (
	"errors"
	"testing"

	"github.com/okian/spithack/internal/domain/validation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIndividualFlow(t *testing.T) {
	Convey("Given a new wizard", t, func() {
		w := New()
		So(w.Step(), ShouldEqual, StepPersonal)
		So(w.Mode(), ShouldEqual, ModeIndividual)
		So(w.TeamMode(), ShouldEqual, TeamModeCreate)

		Convey("When Next is invoked twice", func() {
			So(w.Next(), ShouldBeNil)
			So(w.Next(), ShouldBeNil)

			Convey("Then the wizard is on step three", func() {
				So(w.Step(), ShouldEqual, StepPreferences)
			})

			Convey("And Previous returns to step two, never step one", func() {
				So(w.Previous(), ShouldBeNil)
				So(w.Step(), ShouldEqual, StepSkills)
			})

			Convey("And Next does not skip past the last step", func() {
				So(w.Next(), ShouldEqual, ErrInvalidTransition)
				So(w.Step(), ShouldEqual, StepPreferences)
			})

			Convey("And Submit emits the confirmation", func() {
				n, err := w.Submit()
				So(err, ShouldBeNil)
				So(n.Title, ShouldEqual, "Registration submitted")
				So(n.Description, ShouldEqual, "We've received your registration and will contact you soon.")
				So(w.Submitted(), ShouldBeTrue)

				Convey("Then the wizard is terminal", func() {
					_, err := w.Submit()
					So(err, ShouldEqual, ErrInvalidTransition)
					So(w.Previous(), ShouldEqual, ErrInvalidTransition)
					So(w.SelectMode(ModeTeam), ShouldEqual, ErrInvalidTransition)
				})
			})
		})

		Convey("When Previous is invoked on step one", func() {
			err := w.Previous()
			So(err, ShouldEqual, ErrInvalidTransition)
			So(w.Step(), ShouldEqual, StepPersonal)
		})

		Convey("When submitting from step one", func() {
			_, err := w.Submit()
			So(err, ShouldEqual, ErrInvalidTransition)
			So(w.Step(), ShouldEqual, StepPersonal)
		})
	})
}

func TestTeamFlow(t *testing.T) {
	Convey("Given the team tab", t, func() {
		w := New()
		So(w.SelectMode(ModeTeam), ShouldBeNil)

		Convey("Then the stepper actions are rejected", func() {
			So(w.Next(), ShouldEqual, ErrInvalidTransition)
			So(w.Previous(), ShouldEqual, ErrInvalidTransition)
		})

		Convey("Then both branches submit with the same confirmation", func() {
			create := New()
			So(create.SelectMode(ModeTeam), ShouldBeNil)
			n1, err := create.Submit()
			So(err, ShouldBeNil)

			So(w.SelectTeamMode(TeamModeJoin), ShouldBeNil)
			n2, err := w.Submit()
			So(err, ShouldBeNil)
			So(n2, ShouldResemble, n1)
		})

		Convey("Then unknown team modes are rejected", func() {
			So(w.SelectTeamMode("merge"), ShouldEqual, ErrInvalidState)
			So(w.TeamMode(), ShouldEqual, TeamModeCreate)
		})
	})

	Convey("Switching tabs keeps the individual step", t, func() {
		w := New()
		So(w.Next(), ShouldBeNil)
		So(w.SelectMode(ModeTeam), ShouldBeNil)
		So(w.SelectMode(ModeIndividual), ShouldBeNil)
		So(w.Step(), ShouldEqual, StepSkills)
	})
}

func TestRestoreAndApply(t *testing.T) {
	Convey("Restore validates page values", t, func() {
		w, err := Restore(StepSkills, ModeIndividual, TeamModeJoin)
		So(err, ShouldBeNil)
		So(w.Step(), ShouldEqual, StepSkills)

		_, err = Restore(StepSubmitted, ModeIndividual, TeamModeCreate)
		So(err, ShouldEqual, ErrInvalidState)
		_, err = Restore(StepPersonal, "guest", TeamModeCreate)
		So(err, ShouldEqual, ErrInvalidState)
		_, err = Restore(StepPersonal, ModeTeam, "")
		So(err, ShouldEqual, ErrInvalidState)
	})

	Convey("Apply dispatches actions", t, func() {
		w := New()
		_, err := w.Apply(ActionNext)
		So(err, ShouldBeNil)
		_, err = w.Apply(ActionPrevious)
		So(err, ShouldBeNil)
		So(w.Step(), ShouldEqual, StepPersonal)
		_, err = w.Apply("jump")
		So(err, ShouldEqual, ErrUnknownAction)
	})

	Convey("Step titles", t, func() {
		So(StepPersonal.Title(), ShouldEqual, "Personal Information")
		So(StepSkills.Title(), ShouldEqual, "Skills & Experience")
		So(StepPreferences.Title(), ShouldEqual, "Hackathon Preferences")
	})
}

func validPersonal() Personal {
	return Personal{FirstName: "Tanvi", LastName: "Mehta", Email: "tanvi@example.com", Phone: "+91 98765 43210", Institution: "SPIT"}
}

func TestRegistrationValidate(t *testing.T) {
	Convey("Given an individual registration", t, func() {
		reg := Registration{Kind: KindIndividual, Individual: &IndividualRegistration{
			Personal:    validPersonal(),
			Preferences: Preferences{TermsAccepted: true},
		}}
		reg.ApplyDefaults()

		Convey("Then defaults are filled", func() {
			So(reg.Individual.Skills.Experience, ShouldEqual, "intermediate")
			So(reg.Individual.Preferences.TeamPreference, ShouldEqual, "find-team")
		})

		Convey("Then it validates", func() {
			So(reg.Validate(), ShouldBeNil)
		})

		Convey("When terms are not accepted", func() {
			reg.Individual.Preferences.TermsAccepted = false
			err := reg.Validate()
			So(errors.Is(err, validation.ErrInvalid), ShouldBeTrue)
			So(validation.Fields(err), ShouldContainKey, "preferences.terms_accepted")
		})

		Convey("When the body is missing", func() {
			reg.Individual = nil
			So(validation.Fields(reg.Validate()), ShouldContainKey, "individual")
		})
	})

	Convey("Given a team creation", t, func() {
		reg := Registration{Kind: KindTeamCreate, TeamCreate: &TeamCreation{TeamName: "CodeCrafters", Leader: validPersonal()}}
		reg.ApplyDefaults()
		So(reg.TeamCreate.TeamSize, ShouldEqual, DefaultTeamSize)
		So(reg.Validate(), ShouldBeNil)

		reg.TeamCreate.TeamSize = 6
		So(validation.Fields(reg.Validate()), ShouldContainKey, "team_size")
	})

	Convey("Given a team join without a code", t, func() {
		reg := Registration{Kind: KindTeamJoin, TeamJoin: &TeamJoin{Personal: validPersonal(), TermsAccepted: true}}
		So(validation.Fields(reg.Validate()), ShouldContainKey, "team_code")
	})

	Convey("Unknown kinds are rejected", t, func() {
		So(Registration{Kind: "sponsor"}.Validate(), ShouldEqual, ErrUnknownKind)
	})

	Convey("Normalize keeps only the active body", t, func() {
		reg := Registration{Kind: KindTeamJoin, TeamJoin: &TeamJoin{}, TeamCreate: &TeamCreation{}}
		n := reg.Normalize()
		So(n.TeamJoin, ShouldNotBeNil)
		So(n.TeamCreate, ShouldBeNil)
	})
}

func TestValidateStep(t *testing.T) {
	Convey("Step one requires the personal fields", t, func() {
		err := ValidateStep(StepPersonal, IndividualRegistration{})
		fields := validation.Fields(err)
		for _, k := range []string{"first_name", "last_name", "email", "phone", "institution"} {
			So(fields, ShouldContainKey, k)
		}
		So(ValidateStep(StepPersonal, IndividualRegistration{Personal: validPersonal()}), ShouldBeNil)
	})

	Convey("Step two has only optional fields", t, func() {
		So(ValidateStep(StepSkills, IndividualRegistration{}), ShouldBeNil)
		err := ValidateStep(StepSkills, IndividualRegistration{Skills: SkillsInfo{GitHub: "not a url"}})
		So(validation.Fields(err), ShouldContainKey, "github")
	})
}
