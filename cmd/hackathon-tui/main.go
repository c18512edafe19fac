// Command hackathon-tui browses the portal's events and team directory from
// the terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okian/spithack/internal/tui"
	"github.com/okian/spithack/pkg/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hackathon-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := tui.LoadConfig()
	if err != nil {
		return err
	}
	c := client.New(cfg.BaseURL, client.WithTimeout(cfg.Timeout))

	p := tea.NewProgram(tui.NewApp(c), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
