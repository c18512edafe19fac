package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okian/spithack/pkg/client"
)

type verifyResultMsg struct {
	code   string
	result *client.VerifyResult
	err    error
}

// verifyModel checks a team code before a project submission. The input is
// always focused.
type verifyModel struct {
	client   *client.Client
	code     string
	checking bool
	result   *client.VerifyResult
	checked  string // code the result belongs to
	err      string
	status   string
}

func newVerifyModel(c *client.Client) verifyModel {
	return verifyModel{client: c}
}

func (m verifyModel) verify() tea.Cmd {
	c := m.client
	code := strings.TrimSpace(m.code)
	return func() tea.Msg {
		res, err := c.VerifyTeamCode(context.Background(), code)
		return verifyResultMsg{code: code, result: res, err: err}
	}
}

func (m verifyModel) Update(msg tea.Msg) (verifyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyResultMsg:
		m.checking = false
		if msg.err != nil {
			m.err = msg.err.Error()
			m.result = nil
			return m, nil
		}
		m.err = ""
		m.result = msg.result
		m.checked = msg.code

	case copyResultMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.what
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.checking {
				return m, nil
			}
			m.checking = true
			m.status = ""
			return m, m.verify()
		case "ctrl+y":
			if m.result != nil && m.result.Valid {
				code := m.checked
				return m, func() tea.Msg {
					return copyResultMsg{what: "team code", err: clipboard.WriteAll(code)}
				}
			}
		default:
			next := editRune(m.code, msg.String())
			if next != m.code {
				m.code = next
				m.result = nil
			}
		}
	}
	return m, nil
}

func (m verifyModel) View() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("Verify your team code") + "\n")
	b.WriteString(" " + dimStyle.Render("Codes come from your team leader. Verify before submitting a project.") + "\n\n")
	b.WriteString(" " + renderInput("team code", m.code, "", true) + "\n\n")

	switch {
	case m.checking:
		b.WriteString(" " + dimStyle.Render("checking...") + "\n")
	case m.err != "":
		b.WriteString(" " + closedStyle.Render("error: "+m.err) + "\n")
	case m.result != nil && m.result.Valid:
		b.WriteString(" " + openStyle.Render("✓ "+m.result.Badge) + "\n")
		b.WriteString(" " + dimStyle.Render(m.result.Notification.Description) + "\n")
	case m.result != nil:
		b.WriteString(" " + closedStyle.Render(m.result.Notification.Title) + "\n")
		b.WriteString(" " + dimStyle.Render(m.result.Notification.Description) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n " + dimStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m verifyModel) helpKeys() string {
	return helpEntry("enter", "verify") + "  " + helpEntry("ctrl+y", "copy") + "  " + helpEntry("esc", "back")
}
