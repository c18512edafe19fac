package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/pkg/client"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var testEvents = []model.Event{
	{ID: "hackathon-2023", Title: "SPIT Hackathon 2023", Date: "December 15-17, 2023", Category: model.CategoryFlagship, RegistrationOpen: true},
	{ID: "webdev-challenge", Title: "Web Development Challenge", Date: "November 25, 2023", Category: model.CategoryWeb},
	{ID: "ai-summit", Title: "AI Innovation Summit", Date: "January 10-12, 2024", Category: model.CategoryAIML},
	{ID: "cybersecurity-hack", Title: "Cybersecurity Hackathon", Date: "February 5, 2024", Category: model.CategorySecurity},
}

func TestEventsModel(t *testing.T) {
	Convey("Given a loaded events view", t, func() {
		m := newEventsModel(nil)
		m, _ = m.Update(eventsLoadedMsg{events: testEvents})

		Convey("Then events are listed with their registration state", func() {
			view := m.View()
			So(view, ShouldContainSubstring, "SPIT Hackathon 2023")
			So(view, ShouldContainSubstring, "Registration Open")
			So(view, ShouldContainSubstring, "Registration Closed")
		})

		Convey("When cycling the category", func() {
			m, cmd := m.Update(key("c"))
			So(cmd, ShouldNotBeNil)
			So(m.query().Category, ShouldEqual, "Flagship")

			Convey("Then it wraps back to All", func() {
				for range len(m.categories) - 1 {
					m, _ = m.Update(key("c"))
				}
				So(m.query().Category, ShouldBeEmpty)
			})
		})

		Convey("When typing a search", func() {
			m, _ = m.Update(key("/"))
			So(m.searching, ShouldBeTrue)
			for _, r := range "web" {
				m, _ = m.Update(key(string(r)))
			}
			m, _ = m.Update(key("backspace"))
			m, cmd := m.Update(key("enter"))

			So(cmd, ShouldNotBeNil)
			So(m.searching, ShouldBeFalse)
			So(m.query().Search, ShouldEqual, "we")
		})

		Convey("When opening an event", func() {
			m, _ = m.Update(key("j"))
			m, _ = m.Update(key("enter"))
			So(m.detail, ShouldBeTrue)
			So(m.View(), ShouldContainSubstring, "November 25, 2023")

			m, _ = m.Update(key("esc"))
			So(m.detail, ShouldBeFalse)
		})

		Convey("Then the cursor stays in range", func() {
			for range 10 {
				m, _ = m.Update(key("j"))
			}
			So(m.cursor, ShouldEqual, len(testEvents)-1)
			for range 10 {
				m, _ = m.Update(key("k"))
			}
			So(m.cursor, ShouldEqual, 0)
		})

		Convey("Then the spotlight rotates over the first three", func() {
			seen := []int{m.spotlight}
			for range 3 {
				var cmd tea.Cmd
				m, cmd = m.Update(spotlightTickMsg{})
				So(cmd, ShouldNotBeNil)
				seen = append(seen, m.spotlight)
			}
			So(seen, ShouldResemble, []int{0, 1, 2, 0})
		})

		Convey("When nothing matches", func() {
			m, _ = m.Update(eventsLoadedMsg{events: []model.Event{}})
			So(m.View(), ShouldContainSubstring, "No events found")
		})

		Convey("When loading fails", func() {
			m, _ = m.Update(eventsLoadedMsg{err: errors.New("connection refused")})
			So(m.View(), ShouldContainSubstring, "connection refused")
		})
	})
}

func TestTeamsModel(t *testing.T) {
	Convey("Given a loaded directory", t, func() {
		m := newTeamsModel(nil)
		m, _ = m.Update(directoryLoadedMsg{
			teams: []model.Team{{Name: "CodeCrafters", OpenPositions: []string{"Designer"}, Members: []model.Member{{Name: "Alex Johnson", Role: "Team Leader"}}}},
			individuals: []model.Individual{
				{Name: "Tanvi Mehta", Skills: []string{"Frontend"}},
				{Name: "Arjun Nair", Skills: []string{"Blockchain"}},
			},
		})

		Convey("Then teams show first with counts", func() {
			view := m.View()
			So(view, ShouldContainSubstring, "Teams (1)")
			So(view, ShouldContainSubstring, "Individuals (2)")
			So(view, ShouldContainSubstring, "1 Open Position")
			So(view, ShouldContainSubstring, "Alex Johnson")
		})

		Convey("When switching tabs", func() {
			m, _ = m.Update(key("tab"))
			So(m.tab, ShouldEqual, tabIndividuals)
			So(m.View(), ShouldContainSubstring, "Arjun Nair")

			m, _ = m.Update(key("j"))
			So(m.cursor, ShouldEqual, 1)
		})

		Convey("When cycling the skill", func() {
			m, cmd := m.Update(key("s"))
			So(cmd, ShouldNotBeNil)
			So(m.skills[m.skill].Value, ShouldEqual, "Frontend")
		})

		Convey("When the directory is empty", func() {
			m, _ = m.Update(directoryLoadedMsg{})
			So(m.View(), ShouldContainSubstring, "No teams found")
			m, _ = m.Update(key("t"))
			So(m.View(), ShouldContainSubstring, "No individuals found")
		})
	})
}

func TestVerifyModel(t *testing.T) {
	Convey("Given the verify view", t, func() {
		m := newVerifyModel(nil)
		for _, r := range "CODE1" {
			m, _ = m.Update(key(string(r)))
		}
		So(m.code, ShouldEqual, "CODE1")

		Convey("When enter is pressed", func() {
			m, cmd := m.Update(key("enter"))
			So(cmd, ShouldNotBeNil)
			So(m.checking, ShouldBeTrue)
		})

		Convey("When a valid result arrives", func() {
			res := &client.VerifyResult{Result: submission.Verify("CODE1"), Badge: "Team CodeCrafters verified"}
			m, _ = m.Update(verifyResultMsg{code: "CODE1", result: res})
			So(m.View(), ShouldContainSubstring, "Team CodeCrafters verified")

			Convey("Then editing the code clears it", func() {
				m, _ = m.Update(key("backspace"))
				So(m.result, ShouldBeNil)
			})
		})

		Convey("When an invalid result arrives", func() {
			res := &client.VerifyResult{Result: submission.Verify("AB")}
			m, _ = m.Update(verifyResultMsg{code: "AB", result: res})
			So(m.View(), ShouldContainSubstring, "Invalid team code")
		})
	})
}

func TestApp(t *testing.T) {
	Convey("Given the app", t, func() {
		a := NewApp(nil)
		next, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		a = next.(App)

		Convey("Then number keys switch tabs", func() {
			next, cmd := a.Update(key("2"))
			a = next.(App)
			So(a.view, ShouldEqual, viewTeams)
			So(cmd, ShouldNotBeNil)

			next, _ = a.Update(key("3"))
			a = next.(App)
			So(a.view, ShouldEqual, viewVerify)
			So(a.View(), ShouldContainSubstring, "Verify your team code")
		})

		Convey("Then typing in verify does not switch tabs", func() {
			next, _ := a.Update(key("3"))
			next, _ = next.(App).Update(key("1"))
			a = next.(App)
			So(a.view, ShouldEqual, viewVerify)
			So(a.verify.code, ShouldEqual, "1")

			next, _ = a.Update(key("esc"))
			So(next.(App).view, ShouldEqual, viewEvents)
		})

		Convey("Then q quits", func() {
			_, cmd := a.Update(key("q"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})

		Convey("Then load results reach their view", func() {
			next, _ := a.Update(eventsLoadedMsg{events: testEvents})
			So(next.(App).View(), ShouldContainSubstring, "SPIT Hackathon 2023")
		})
	})
}

func TestHelpers(t *testing.T) {
	Convey("Given the text helpers", t, func() {
		So(editRune("ab", "backspace"), ShouldEqual, "a")
		So(editRune("", "backspace"), ShouldEqual, "")
		So(editRune("a", "space"), ShouldEqual, "a ")
		So(editRune("a", "ctrl+a"), ShouldEqual, "a")
		So(truncStr("Hackathon", 5), ShouldEqual, "Hack…")
		So(truncStr("Hack", 5), ShouldEqual, "Hack")
		So(truncateToHeight("a\nb\nc\n", 2), ShouldEqual, "a\nb\n")
		So(moveCursor(0, -1, 3), ShouldEqual, 0)
		So(moveCursor(2, 1, 3), ShouldEqual, 2)
	})
}

func TestLoadConfig(t *testing.T) {
	Convey("Given the terminal client environment", t, func() {
		Convey("Then defaults apply", func() {
			cfg, err := LoadConfig()
			So(err, ShouldBeNil)
			So(cfg.BaseURL, ShouldEqual, "http://localhost:9080")
			So(cfg.Timeout.Seconds(), ShouldEqual, 10)
		})

		Convey("Then overrides are read", func() {
			t.Setenv("HACKATHON_TUI_BASE_URL", "http://portal:8080")
			t.Setenv("HACKATHON_TUI_TIMEOUT", "3s")
			cfg, err := LoadConfig()
			So(err, ShouldBeNil)
			So(cfg.BaseURL, ShouldEqual, "http://portal:8080")
			So(cfg.Timeout.Seconds(), ShouldEqual, 3)
		})

		Convey("Then a bad timeout fails", func() {
			t.Setenv("HACKATHON_TUI_TIMEOUT", "soon")
			_, err := LoadConfig()
			So(err, ShouldNotBeNil)
		})
	})
}
