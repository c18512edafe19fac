package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// bannerTickMsg drives the header shimmer.
type bannerTickMsg time.Time

func bannerTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return bannerTickMsg(t)
	})
}

// renderBanner renders the header as a wave moving from deep to light violet.
func renderBanner(frame int) string {
	const text = "SPIT HACKATHONS"
	n := len(text)
	t := float64(frame)

	var b strings.Builder
	for i := 0; i < n; i++ {
		if text[i] == ' ' {
			b.WriteString("   ")
			continue
		}
		x := float64(i) / float64(n-1)
		v := math.Sin(t*0.12-x*3.0)*0.5 + 0.5
		v = v*0.8 + 0.2

		// Deep (58, 40, 140) to light (167, 139, 250).
		r := clampByte(58 + v*(167-58))
		g := clampByte(40 + v*(139-40))
		bl := clampByte(140 + v*(250-140))

		s := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
		b.WriteString(s.Render(string(text[i])))
		if i < n-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a78bfa"))

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	closedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0b1020")).
			Background(lipgloss.Color("#a78bfa")).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a78bfa")).
				Bold(true)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a3f55")).
			Padding(0, 1)
)

func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// renderInput renders a one-line text field with a cursor when focused.
func renderInput(label, value, placeholder string, focused bool) string {
	prompt := inputPromptStyle.Render(label + " > ")
	switch {
	case focused:
		return prompt + selectedStyle.Render(value) + accentStyle.Render("█")
	case value == "":
		return prompt + metaStyle.Render(placeholder)
	default:
		return prompt + normalStyle.Render(value)
	}
}
