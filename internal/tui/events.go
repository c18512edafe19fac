package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/pkg/client"
)

// upcomingCount is how many leading events take turns in the spotlight.
const upcomingCount = 3

// spotlightInterval matches the landing page hero rotation.
const spotlightInterval = 5 * time.Second

// -- messages --

type eventsLoadedMsg struct {
	events []model.Event
	err    error
}

type spotlightTickMsg time.Time

type copyResultMsg struct {
	what string
	err  error
}

func spotlightTickCmd() tea.Cmd {
	return tea.Tick(spotlightInterval, func(t time.Time) tea.Msg {
		return spotlightTickMsg(t)
	})
}

// -- model --

type eventsModel struct {
	client     *client.Client
	events     []model.Event
	categories []model.Category
	category   int // index into categories; 0 is All
	search     string
	searching  bool
	cursor     int
	detail     bool
	spotlight  int
	loading    bool
	err        string
	status     string
	width      int
	height     int
}

func newEventsModel(c *client.Client) eventsModel {
	return eventsModel{client: c, categories: catalog.Categories()}
}

func (m eventsModel) Init() tea.Cmd {
	return m.load()
}

func (m eventsModel) query() client.EventQuery {
	q := client.EventQuery{Search: strings.TrimSpace(m.search)}
	if m.category > 0 {
		q.Category = string(m.categories[m.category])
	}
	return q
}

func (m eventsModel) load() tea.Cmd {
	c := m.client
	q := m.query()
	return func() tea.Msg {
		events, err := c.ListEvents(context.Background(), q)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m eventsModel) Update(msg tea.Msg) (eventsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.events = msg.events
		m.spotlight = 0
		if m.cursor >= len(m.events) {
			m.cursor = 0
		}

	case spotlightTickMsg:
		if n := min(upcomingCount, len(m.events)); n > 0 {
			m.spotlight = (m.spotlight + 1) % n
		}
		return m, spotlightTickCmd()

	case copyResultMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.what
		}

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m eventsModel) handleSearchKey(msg tea.KeyMsg) (eventsModel, tea.Cmd) {
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

func (m eventsModel) handleKey(msg tea.KeyMsg) (eventsModel, tea.Cmd) {
	if m.detail {
		switch msg.String() {
		case "esc", "backspace":
			m.detail = false
		case "y":
			return m, m.copySelected()
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.cursor = moveCursor(m.cursor, 1, len(m.events))
	case "k", "up":
		m.cursor = moveCursor(m.cursor, -1, len(m.events))
	case "enter":
		if m.cursor < len(m.events) {
			m.detail = true
			m.status = ""
		}
	case "/":
		m.searching = true
	case "c":
		m.category = (m.category + 1) % len(m.categories)
		m.cursor = 0
		m.loading = true
		return m, m.load()
	case "x":
		m.search = ""
		m.category = 0
		m.cursor = 0
		m.loading = true
		return m, m.load()
	case "y":
		return m, m.copySelected()
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m eventsModel) copySelected() tea.Cmd {
	if m.cursor >= len(m.events) {
		return nil
	}
	e := m.events[m.cursor]
	text := fmt.Sprintf("%s, %s, %s", e.Title, e.Date, e.Location)
	return func() tea.Msg {
		return copyResultMsg{what: e.Title, err: clipboard.WriteAll(text)}
	}
}

func (m eventsModel) View() string {
	var b strings.Builder

	b.WriteString(" " + renderInput("search", m.search, "press / to search events", m.searching))
	b.WriteString("   " + dimStyle.Render("category: ") + accentStyle.Render(string(m.categories[m.category])) + "\n\n")

	switch {
	case m.loading && len(m.events) == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case m.err != "":
		b.WriteString(" " + closedStyle.Render("error: "+m.err) + "\n")
		return b.String()
	case len(m.events) == 0:
		b.WriteString("\n " + selectedStyle.Render("No events found") + "\n")
		b.WriteString(" " + dimStyle.Render("Try adjusting your search or filter criteria") + "\n")
		return b.String()
	}

	if m.detail {
		b.WriteString(m.detailView(m.events[m.cursor]))
	} else {
		if n := min(upcomingCount, len(m.events)); n > 0 && m.spotlight < n {
			e := m.events[m.spotlight]
			b.WriteString(" " + badgeStyle.Render("UPCOMING") + " " + selectedStyle.Render(e.Title) + dimStyle.Render("  "+e.Date) + "\n\n")
		}
		for i, e := range m.events {
			cursor := "  "
			title := normalStyle.Render(truncStr(e.Title, 40))
			if i == m.cursor {
				cursor = accentStyle.Render("> ")
				title = selectedStyle.Render(truncStr(e.Title, 40))
			}
			b.WriteString(" " + cursor + title + "  " + metaStyle.Render(string(e.Category)) + "  " + dimStyle.Render(e.Date) + "  " + registrationLabel(e) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n " + dimStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m eventsModel) detailView(e model.Event) string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	lines := []string{
		selectedStyle.Render(e.Title) + "  " + metaStyle.Render(string(e.Category)),
		"",
		normalStyle.Width(width - 4).Render(e.Description),
		"",
		dimStyle.Render("Date      ") + normalStyle.Render(e.Date),
		dimStyle.Render("Time      ") + normalStyle.Render(e.Time),
		dimStyle.Render("Location  ") + normalStyle.Render(e.Location),
		dimStyle.Render("Capacity  ") + normalStyle.Render(e.Capacity),
		"",
		registrationLabel(e),
	}
	return detailBoxStyle.Width(width).Render(strings.Join(lines, "\n")) + "\n"
}

func registrationLabel(e model.Event) string {
	if e.RegistrationOpen {
		return openStyle.Render("Registration Open")
	}
	return closedStyle.Render("Registration Closed")
}

func (m eventsModel) helpKeys() string {
	switch {
	case m.searching:
		return helpEntry("enter", "apply") + "  " + helpEntry("esc", "cancel")
	case m.detail:
		return helpEntry("y", "copy") + "  " + helpEntry("esc", "back")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("/", "search") + "  " +
			helpEntry("c", "category") + "  " + helpEntry("x", "clear") + "  " + helpEntry("y", "copy") + "  " + helpEntry("r", "reload")
	}
}
