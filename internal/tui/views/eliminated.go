package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// EliminatedModel is the view model for the elimination screen.
type EliminatedModel struct {
	playerName string
	reason     string
	seconds    int
	width      int
	height     int
}

// NewEliminatedModel creates the elimination view.
func NewEliminatedModel(playerName, reason string, seconds, width, height int) EliminatedModel {
	return EliminatedModel{
		playerName: playerName,
		reason:     reason,
		seconds:    seconds,
		width:      width,
		height:     height,
	}
}

// Init returns the initial command for the elimination view.
func (m EliminatedModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the elimination view.
func (m EliminatedModel) Update(msg tea.Msg) (EliminatedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.Restart) {
			return m, func() tea.Msg {
				return tui.RestartMsg{}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the elimination view.
func (m EliminatedModel) View() string {
	var b strings.Builder

	b.WriteString(tui.ErrorStyle.Bold(true).Render("ELIMINATED"))
	b.WriteString("\n\n")

	if m.playerName != "" {
		b.WriteString(fmt.Sprintf("%s, your trial has ended.\n\n", m.playerName))
	}

	b.WriteString(tui.ErrorStyle.Render(m.reason))
	b.WriteString("\n\n")

	if m.seconds > 0 {
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Time in trial: %s", tui.FormatClock(m.seconds))))
		b.WriteString("\n\n")
	}

	b.WriteString("The Silent Trial is designed to eliminate those who act on\n")
	b.WriteString("assumption rather than careful analysis. Every instruction\n")
	b.WriteString("contains critical details that must not be overlooked.\n\n")

	b.WriteString(tui.DimStyle.Render("r: retry the trial       Ctrl+C: exit"))

	return b.String()
}
