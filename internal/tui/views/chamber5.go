package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// Chamber5Model is the view model for THE FINAL APPEAL.
type Chamber5Model struct {
	input  textinput.Model
	width  int
	height int
}

// NewChamber5Model creates the final chamber view.
func NewChamber5Model(width, height int) Chamber5Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a number..."
	ti.CharLimit = 1
	ti.Width = 20
	ti.Focus()

	return Chamber5Model{input: ti, width: width, height: height}
}

// Init returns the initial command for the chamber view.
func (m Chamber5Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chamber view.
func (m Chamber5Model) Update(msg tea.Msg) (Chamber5Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				return tui.SubmitAnswerMsg{Raw: raw}
			}
		case tea.KeyRunes:
			// Numeric field: 0-5 only.
			for _, r := range msg.Runes {
				if r < '0' || r > '5' {
					return m, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chamber view.
func (m Chamber5Model) View() string {
	accent := tui.AccentStyle(game.StageChamber5)
	var b strings.Builder

	b.WriteString(accent.Render("CHAMBER 5 — " + game.StageChamber5.Title()))
	b.WriteString("\n\n")

	b.WriteString("Submit the number of chambers you have passed correctly.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Read the instruction carefully. When exactly are you submitting this?"))

	return b.String()
}
