package directory

import (
	"testing"

	"github.com/okian/spithack/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleTeams() []model.Team {
	return []model.Team{
		{
			ID: "team-1", Name: "CodeCrafters",
			Description: "We're building an AI-powered platform to help students find and collaborate on projects that align with their interests and skills.",
			Members: []model.Member{
				{Name: "Alex Johnson", Skills: []string{"Frontend", "UI/UX"}},
				{Name: "Priya Sharma", Skills: []string{"Backend", "API"}},
				{Name: "Michael Chen", Skills: []string{"AI/ML", "Python"}},
			},
		},
		{
			ID: "team-2", Name: "Blockchain Pioneers",
			Description: "We're developing a decentralized application for secure and transparent academic credential verification using blockchain technology.",
			Members: []model.Member{
				{Name: "Ravi Patel", Skills: []string{"Blockchain", "Solidity"}},
				{Name: "Emma Wilson", Skills: []string{"React", "Web3.js"}},
			},
		},
		{
			ID: "team-3", Name: "HealthTech Innovators",
			Description: "Our team is creating a mobile application that uses machine learning to predict and prevent health issues based on user-provided data.",
			Members: []model.Member{
				{Name: "Sarah Kim", Skills: []string{"Project Management", "Healthcare"}},
				{Name: "David Rodriguez", Skills: []string{"React Native", "Flutter"}},
			},
		},
	}
}

func sampleIndividuals() []model.Individual {
	return []model.Individual{
		{ID: "ind-1", Name: "Tanvi Mehta", Skills: []string{"Frontend", "React", "TypeScript"}, Bio: "Frontend developer with experience in building responsive and accessible web applications."},
		{ID: "ind-2", Name: "Rahul Kumar", Skills: []string{"Backend", "Python", "Django", "Flask"}, Bio: "Backend developer specializing in Python-based web services and APIs."},
		{ID: "ind-3", Name: "Sophia Zhang", Skills: []string{"UI/UX Design", "Figma", "Adobe XD"}, Bio: "UI/UX designer passionate about creating intuitive and accessible interfaces."},
		{ID: "ind-4", Name: "Arjun Nair", Skills: []string{"Blockchain", "Solidity", "Ethereum", "Web3.js"}, Bio: "Blockchain developer with experience in Ethereum-based applications."},
	}
}

func teamNames(ts []model.Team) []string {
	out := []string{}
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func individualNames(is []model.Individual) []string {
	out := []string{}
	for _, i := range is {
		out = append(out, i.Name)
	}
	return out
}

func TestSkillFilter(t *testing.T) {
	teams, individuals := sampleTeams(), sampleIndividuals()

	Convey("Given the Blockchain skill is selected", t, func() {
		f := Filter{Skill: "Blockchain"}
		gotTeams := teamNames(FilterTeams(teams, f))
		gotInds := individualNames(FilterIndividuals(individuals, f))

		Convey("Then both lists narrow independently", func() {
			So(gotTeams, ShouldResemble, []string{"Blockchain Pioneers"})
			So(gotInds, ShouldResemble, []string{"Arjun Nair"})
			So(gotTeams, ShouldNotContain, "CodeCrafters")
			So(gotInds, ShouldNotContain, "Tanvi Mehta")
		})
	})

	Convey("Given a lower-case skill", t, func() {
		So(teamNames(FilterTeams(teams, Filter{Skill: "frontend"})), ShouldResemble, []string{"CodeCrafters"})
	})

	Convey("Given UI/UX", t, func() {
		Convey("Then the match is on whole tags", func() {
			So(teamNames(FilterTeams(teams, Filter{Skill: "UI/UX"})), ShouldResemble, []string{"CodeCrafters"})
			So(FilterIndividuals(individuals, Filter{Skill: "UI/UX"}), ShouldBeEmpty)
		})
	})

	Convey("Given the sentinel", t, func() {
		So(teamNames(FilterTeams(teams, Filter{Skill: SkillAll})), ShouldResemble, teamNames(teams))
		So(individualNames(FilterIndividuals(individuals, Filter{})), ShouldResemble, individualNames(individuals))
		So(Filter{Skill: "ALL"}.AllSkills(), ShouldBeFalse)
		So(FilterIndividuals(individuals, Filter{Skill: "ALL"}), ShouldBeEmpty)
	})
}

func TestSearchFilter(t *testing.T) {
	teams, individuals := sampleTeams(), sampleIndividuals()

	Convey("Team search covers name and description", t, func() {
		So(teamNames(FilterTeams(teams, Filter{Search: "health"})), ShouldResemble, []string{"HealthTech Innovators"})
		So(teamNames(FilterTeams(teams, Filter{Search: "credential"})), ShouldResemble, []string{"Blockchain Pioneers"})
	})

	Convey("Individual search covers name and bio", t, func() {
		So(individualNames(FilterIndividuals(individuals, Filter{Search: "python"})), ShouldResemble, []string{"Rahul Kumar"})
		So(individualNames(FilterIndividuals(individuals, Filter{Search: "sophia"})), ShouldResemble, []string{"Sophia Zhang"})
	})

	Convey("Search and skill combine with AND", t, func() {
		So(FilterIndividuals(individuals, Filter{Search: "python", Skill: "Frontend"}), ShouldBeEmpty)
		So(teamNames(FilterTeams(teams, Filter{Search: "application", Skill: "Blockchain"})), ShouldResemble, []string{"Blockchain Pioneers"})
	})

	Convey("No match yields an empty list", t, func() {
		got := FilterTeams(teams, Filter{Search: "zzz-nonexistent"})
		So(got, ShouldNotBeNil)
		So(got, ShouldBeEmpty)
	})

	Convey("Narrowing is monotonic", t, func() {
		prev := len(individuals)
		for _, term := range []string{"", "e", "de", "dev", "developer", "developer with"} {
			n := len(FilterIndividuals(individuals, Filter{Search: term}))
			So(n, ShouldBeLessThanOrEqualTo, prev)
			prev = n
		}
	})
}

func TestSkills(t *testing.T) {
	Convey("Skills lists the sentinel first with display labels", t, func() {
		opts := Skills()
		So(opts[0].Value, ShouldEqual, SkillAll)
		So(opts, ShouldContain, SkillOption{Value: "UI/UX", Label: "UI/UX Design"})
		So(opts, ShouldContain, SkillOption{Value: "Mobile", Label: "Mobile Development"})
	})
}
