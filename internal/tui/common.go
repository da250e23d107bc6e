// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Key string constants for views that match on msg.String() directly.
const (
	KeyTab   = "tab"
	KeyEnter = "enter"
	KeyEsc   = "esc"
	KeyLeft  = "left"
	KeyRight = "right"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model.
// If stdout is a TTY, it runs in alternate screen mode unless inline
// is set. Otherwise it prints a hint and exits.
func Run(m tea.Model, inline bool) error {
	if !IsTTY() {
		fmt.Println("Non-TTY environment detected.")
		fmt.Println("The Silent Trial needs an interactive terminal. Try 'silenttrial top' to see the leaderboard.")
		return nil
	}

	var opts []tea.ProgramOption
	if !inline {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
