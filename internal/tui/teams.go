package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/pkg/client"
)

type directoryTab int

const (
	tabTeams directoryTab = iota
	tabIndividuals
)

// -- messages --

type directoryLoadedMsg struct {
	teams       []model.Team
	individuals []model.Individual
	err         error
}

// -- model --

type teamsModel struct {
	client      *client.Client
	tab         directoryTab
	teams       []model.Team
	individuals []model.Individual
	skills      []directory.SkillOption
	skill       int // index into skills; 0 is All Skills
	search      string
	searching   bool
	cursor      int
	loading     bool
	err         string
	status      string
	width       int
	height      int
}

func newTeamsModel(c *client.Client) teamsModel {
	return teamsModel{client: c, skills: directory.Skills()}
}

func (m teamsModel) Init() tea.Cmd {
	return m.load()
}

func (m teamsModel) load() tea.Cmd {
	c := m.client
	search := strings.TrimSpace(m.search)
	skill := m.skills[m.skill].Value
	return func() tea.Msg {
		ctx := context.Background()
		teams, err := c.ListTeams(ctx, search, skill)
		if err != nil {
			return directoryLoadedMsg{err: err}
		}
		people, err := c.ListIndividuals(ctx, search, skill)
		return directoryLoadedMsg{teams: teams, individuals: people, err: err}
	}
}

func (m teamsModel) count() int {
	if m.tab == tabIndividuals {
		return len(m.individuals)
	}
	return len(m.teams)
}

func (m teamsModel) Update(msg tea.Msg) (teamsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case directoryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.teams = msg.teams
		m.individuals = msg.individuals
		if m.cursor >= m.count() {
			m.cursor = 0
		}

	case copyResultMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.what
		}

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.loading = true
				m.cursor = 0
				return m, m.load()
			case "esc":
				m.searching = false
			default:
				m.search = editRune(m.search, msg.String())
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m teamsModel) handleKey(msg tea.KeyMsg) (teamsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor = moveCursor(m.cursor, 1, m.count())
	case "k", "up":
		m.cursor = moveCursor(m.cursor, -1, m.count())
	case "tab", "t":
		if m.tab == tabTeams {
			m.tab = tabIndividuals
		} else {
			m.tab = tabTeams
		}
		m.cursor = 0
		m.status = ""
	case "/":
		m.searching = true
	case "s":
		m.skill = (m.skill + 1) % len(m.skills)
		m.cursor = 0
		m.loading = true
		return m, m.load()
	case "x":
		m.search = ""
		m.skill = 0
		m.cursor = 0
		m.loading = true
		return m, m.load()
	case "y":
		if m.tab == tabTeams && m.cursor < len(m.teams) {
			name := m.teams[m.cursor].Name
			return m, func() tea.Msg {
				return copyResultMsg{what: name, err: clipboard.WriteAll(name)}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m teamsModel) View() string {
	var b strings.Builder

	b.WriteString(" " + renderInput("search", m.search, "press / to search", m.searching))
	b.WriteString("   " + dimStyle.Render("skill: ") + accentStyle.Render(m.skills[m.skill].Label) + "\n")

	teamsLabel := fmt.Sprintf("Teams (%d)", len(m.teams))
	peopleLabel := fmt.Sprintf("Individuals (%d)", len(m.individuals))
	if m.tab == tabTeams {
		b.WriteString(" " + selectedStyle.Underline(true).Render(teamsLabel) + "   " + dimStyle.Render(peopleLabel) + "\n\n")
	} else {
		b.WriteString(" " + dimStyle.Render(teamsLabel) + "   " + selectedStyle.Underline(true).Render(peopleLabel) + "\n\n")
	}

	switch {
	case m.loading && m.count() == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case m.err != "":
		b.WriteString(" " + closedStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}

	if m.tab == tabTeams {
		m.renderTeams(&b)
	} else {
		m.renderIndividuals(&b)
	}
	if m.status != "" {
		b.WriteString("\n " + dimStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m teamsModel) renderTeams(b *strings.Builder) {
	if len(m.teams) == 0 {
		b.WriteString(" " + selectedStyle.Render("No teams found") + "\n")
		b.WriteString(" " + dimStyle.Render("Try adjusting your search or filter criteria") + "\n")
		return
	}
	for i, t := range m.teams {
		cursor := "  "
		name := normalStyle.Render(t.Name)
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			name = selectedStyle.Render(t.Name)
		}
		b.WriteString(" " + cursor + name + "  " + openStyle.Render(t.OpenPositionsLabel()) + "  " + metaStyle.Render(t.Hackathon) + "\n")
		if i == m.cursor {
			for _, mem := range t.Members {
				b.WriteString("     " + dimStyle.Render(mem.Name+" · "+mem.Role) + "  " + metaStyle.Render(strings.Join(mem.Skills, ", ")) + "\n")
			}
			if len(t.OpenPositions) > 0 {
				b.WriteString("     " + accentStyle.Render("open: ") + normalStyle.Render(strings.Join(t.OpenPositions, ", ")) + "\n")
			}
		}
	}
}

func (m teamsModel) renderIndividuals(b *strings.Builder) {
	if len(m.individuals) == 0 {
		b.WriteString(" " + selectedStyle.Render("No individuals found") + "\n")
		b.WriteString(" " + dimStyle.Render("Try adjusting your search or filter criteria") + "\n")
		return
	}
	for i, p := range m.individuals {
		cursor := "  "
		name := normalStyle.Render(p.Name)
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			name = selectedStyle.Render(p.Name)
		}
		b.WriteString(" " + cursor + name + "  " + metaStyle.Render(p.Experience) + "  " + dimStyle.Render(strings.Join(p.Skills, ", ")) + "\n")
		if i == m.cursor && p.Bio != "" {
			b.WriteString("     " + normalStyle.Render(truncStr(p.Bio, max(m.width-8, 40))) + "\n")
		}
	}
}

func (m teamsModel) helpKeys() string {
	if m.searching {
		return helpEntry("enter", "apply") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("tab", "teams/individuals") + "  " + helpEntry("/", "search") + "  " +
		helpEntry("s", "skill") + "  " + helpEntry("x", "clear") + "  " + helpEntry("y", "copy name")
}
