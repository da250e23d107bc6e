package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// Chamber4Model is the view model for THE VERDICT CLOCK.
type Chamber4Model struct {
	input  textinput.Model
	width  int
	height int
}

// NewChamber4Model creates the verdict clock chamber view.
func NewChamber4Model(width, height int) Chamber4Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer (e.g., today, tomorrow, yesterday)..."
	ti.CharLimit = 50
	ti.Width = 48
	ti.Focus()

	return Chamber4Model{input: ti, width: width, height: height}
}

// Init returns the initial command for the chamber view.
func (m Chamber4Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chamber view.
func (m Chamber4Model) Update(msg tea.Msg) (Chamber4Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == tui.KeyEnter {
			raw := m.input.Value()
			if strings.TrimSpace(raw) == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				return tui.SubmitAnswerMsg{Raw: raw}
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
func (m Chamber4Model) View() string {
	accent := tui.AccentStyle(game.StageChamber4)
	var b strings.Builder

	b.WriteString(accent.Render("CHAMBER 4 — " + game.StageChamber4.Title()))
	b.WriteString("\n\n")

	b.WriteString("The verdict is announced tomorrow.\n")
	b.WriteString("Yesterday, it was said the verdict would be today.\n")
	b.WriteString("Today, the judge says the verdict is not today.\n\n")

	b.WriteString("When is the verdict announced?\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Consider which statements maintain logical consistency."))

	return b.String()
}
