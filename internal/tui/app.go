// Package tui is a terminal browser for the hackathon portal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okian/spithack/pkg/client"
)

type view int

const (
	viewEvents view = iota
	viewTeams
	viewVerify
)

// App is the root Bubbletea model.
type App struct {
	client *client.Client
	view   view
	events eventsModel
	teams  teamsModel
	verify verifyModel
	width  int
	height int
	frame  int
}

// NewApp creates a new TUI application.
func NewApp(c *client.Client) App {
	return App{
		client: c,
		events: newEventsModel(c),
		teams:  newTeamsModel(c),
		verify: newVerifyModel(c),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.events.Init(), bannerTickCmd(), spotlightTickCmd())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1)
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.events, _ = a.events.Update(bodyMsg)
		a.teams, _ = a.teams.Update(bodyMsg)
		return a, nil

	case bannerTickMsg:
		a.frame++
		return a, bannerTickCmd()

	case spotlightTickMsg:
		var cmd tea.Cmd
		a.events, cmd = a.events.Update(msg)
		return a, cmd

	case eventsLoadedMsg:
		var cmd tea.Cmd
		a.events, cmd = a.events.Update(msg)
		return a, cmd

	case directoryLoadedMsg:
		var cmd tea.Cmd
		a.teams, cmd = a.teams.Update(msg)
		return a, cmd

	case verifyResultMsg:
		var cmd tea.Cmd
		a.verify, cmd = a.verify.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.view == viewVerify && msg.String() == "esc" {
			a.view = viewEvents
			return a, nil
		}
		if !a.isEditing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.view = viewEvents
				return a, nil
			case "2":
				if a.view != viewTeams {
					a.view = viewTeams
					return a, a.teams.Init()
				}
				return a, nil
			case "3", "v":
				a.view = viewVerify
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewEvents:
		a.events, cmd = a.events.Update(msg)
	case viewTeams:
		a.teams, cmd = a.teams.Update(msg)
	case viewVerify:
		a.verify, cmd = a.verify.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.view {
	case viewEvents:
		return a.events.searching
	case viewTeams:
		return a.teams.searching
	case viewVerify:
		return true
	}
	return false
}

func (a App) View() string {
	banner := renderBanner(a.frame)
	pad := max((a.width-lipgloss.Width(banner))/2, 0)
	header := strings.Repeat(" ", pad) + banner + "\n"

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Events", viewEvents},
		{"2", "Teams", viewTeams},
		{"3", "Verify", viewVerify},
	}
	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		w := lipgloss.Width(label)
		left := max((colWidth-w)/2, 0)
		right := max(colWidth-w-left, 0)
		tabBar.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
	}

	var body, help string
	switch a.view {
	case viewEvents:
		body = a.events.View()
		help = a.events.helpKeys()
	case viewTeams:
		body = a.teams.View()
		help = a.teams.helpKeys()
	case viewVerify:
		body = a.verify.View()
		help = a.verify.helpKeys()
	}
	if !a.isEditing() {
		help = helpEntry("1-3", "tabs") + "  " + help + "  " + helpEntry("q", "quit")
	}

	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")
	return fmt.Sprintf("%s\n%s\n%s\n %s", header, tabBar.String(), body, help)
}
