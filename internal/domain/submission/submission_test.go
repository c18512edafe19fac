package submission

import (
	"context"
	"testing"

	"github.com/okian/spithack/internal/domain/validation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVerify(t *testing.T) {
	Convey("Given the placeholder registry", t, func() {
		Convey("When the code is two characters", func() {
			r := Verify("AB")

			Convey("Then it is rejected with a destructive notification", func() {
				So(r.Valid, ShouldBeFalse)
				So(r.Notification.Title, ShouldEqual, "Invalid team code")
				So(r.Notification.Description, ShouldEqual, "Please enter a valid team code.")
				So(r.Notification.Destructive, ShouldBeTrue)
				So(r.Badge(), ShouldBeEmpty)
			})
		})

		Convey("When the code is five characters", func() {
			r := Verify("CODE1")

			Convey("Then the team is found", func() {
				So(r.Valid, ShouldBeTrue)
				So(r.Team, ShouldEqual, "CodeCrafters")
				So(r.Notification.Title, ShouldEqual, "Team found")
				So(r.Notification.Description, ShouldEqual, "Team 'CodeCrafters' has been verified.")
				So(r.Badge(), ShouldEqual, "Team CodeCrafters verified")
			})
		})

		Convey("The boundary is exclusive", func() {
			So(Verify("ABC").Valid, ShouldBeFalse)
			So(Verify("ABCD").Valid, ShouldBeTrue)
			So(Verify("").Valid, ShouldBeFalse)
		})

		Convey("A custom team name is reported", func() {
			r := (&PlaceholderRegistry{Team: "HealthTech Innovators"}).Verify(context.Background(), "HT-42")
			So(r.Badge(), ShouldEqual, "Team HealthTech Innovators verified")
		})
	})
}

func validProject() Project {
	return Project{Name: "StudyMatch", Description: "Match students to projects", Technologies: "Go, HTMX"}
}

func TestForm(t *testing.T) {
	Convey("Given a new form", t, func() {
		f := NewForm()
		So(f.Type, ShouldEqual, TypeRepository)
		So(f.Repository.Branch, ShouldEqual, "main")

		Convey("When values are entered and the type is switched", func() {
			f.Project = validProject()
			f.Repository.URL = "https://github.com/spit/studymatch"
			f.SelectType(TypeDemo)
			f.Demo.DemoURL = "https://studymatch.example.com"

			Convey("Then the hidden subset keeps its values", func() {
				So(f.Repository.URL, ShouldEqual, "https://github.com/spit/studymatch")
			})

			Convey("Then only the visible subset is submitted", func() {
				s := f.Submission()
				So(s.Type, ShouldEqual, TypeDemo)
				So(s.Demo, ShouldNotBeNil)
				So(s.Repository, ShouldBeNil)
				So(s.Assets, ShouldBeNil)
				So(s.Validate(), ShouldBeNil)
			})

			Convey("And switching back restores the repository subset", func() {
				f.SelectType(TypeRepository)
				s := f.Submission()
				So(s.Repository.URL, ShouldEqual, "https://github.com/spit/studymatch")
				So(s.Validate(), ShouldBeNil)
			})
		})

		Convey("When the branch is cleared", func() {
			f.Repository.Branch = ""
			So(f.Submission().Repository.Branch, ShouldEqual, DefaultBranch)
		})
	})
}

func TestSubmissionValidate(t *testing.T) {
	Convey("Missing project information is reported with its path", t, func() {
		s := Submission{Type: TypeRepository, Repository: &Repository{}}
		fields := validation.Fields(s.Validate())
		So(fields, ShouldContainKey, "project.name")
		So(fields, ShouldContainKey, "project.description")
		So(fields, ShouldContainKey, "project.technologies")
		So(fields, ShouldContainKey, "repository.repo_url")
	})

	Convey("The selected subset must be present", t, func() {
		s := Submission{Type: TypeAssets, Project: validProject()}
		So(validation.Fields(s.Validate()), ShouldContainKey, "assets")
	})

	Convey("Asset names are checked by extension", t, func() {
		s := Submission{Type: TypeAssets, Project: validProject(), Assets: &Assets{
			ProjectFiles: "code.zip",
			Slides:       "deck.key",
			Screenshots:  []string{"home.png", "notes.txt"},
		}}
		fields := validation.Fields(s.Validate())
		So(fields, ShouldContainKey, "assets.slides")
		So(fields, ShouldContainKey, "assets.screenshots[1]")
		So(fields, ShouldNotContainKey, "assets.project_files")
	})

	Convey("Unknown types are rejected", t, func() {
		So(Submission{Type: "fax"}.Validate(), ShouldEqual, ErrUnknownType)
	})

	Convey("ParseType falls back to the repository", t, func() {
		So(ParseType("demo"), ShouldEqual, TypeDemo)
		So(ParseType(""), ShouldEqual, TypeRepository)
		So(ParseType("fax"), ShouldEqual, TypeRepository)
		So(TypeAssets.Title(), ShouldEqual, "Project Assets")
	})

	Convey("LookupType only accepts known types", t, func() {
		typ, err := LookupType("assets")
		So(err, ShouldBeNil)
		So(typ, ShouldEqual, TypeAssets)

		_, err = LookupType("fax")
		So(err, ShouldEqual, ErrUnknownType)
	})

	Convey("The confirmation text is fixed", t, func() {
		So(Confirmation().Title, ShouldEqual, "Project submitted successfully")
	})
}
