package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// Chamber3Model is the view model for THE JUDGES.
type Chamber3Model struct {
	picker choicePicker
	width  int
	height int
}

// NewChamber3Model creates the judges chamber view.
func NewChamber3Model(width, height int) Chamber3Model {
	return Chamber3Model{
		picker: newChoicePicker(
			[]string{"Judge 1", "Judge 2", "Judge 3"},
			[]string{"1", "2", "3"},
			"Type 1, 2, or 3...",
			1,
		),
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the chamber view.
func (m Chamber3Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chamber view.
func (m Chamber3Model) Update(msg tea.Msg) (Chamber3Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == tui.KeyEnter {
			raw := m.picker.Value()
			if raw == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				return tui.SubmitAnswerMsg{Raw: raw}
			}
		}
		return m, m.picker.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.picker.input, cmd = m.picker.input.Update(msg)
	return m, cmd
}

// View renders the chamber view.
func (m Chamber3Model) View() string {
	accent := tui.AccentStyle(game.StageChamber3)
	var b strings.Builder

	b.WriteString(accent.Render("CHAMBER 3 — " + game.StageChamber3.Title()))
	b.WriteString("\n\n")

	b.WriteString("Exactly ONE of the following judges is correct.\n\n")

	b.WriteString(accent.Render("Judge 1:"))
	b.WriteString(` "This chamber has no correct answer."` + "\n")
	b.WriteString(accent.Render("Judge 2:"))
	b.WriteString(` "Judge 3 is wrong."` + "\n")
	b.WriteString(accent.Render("Judge 3:"))
	b.WriteString(` "Judge 1 is correct."` + "\n\n")

	b.WriteString("Which judge is correct?\n\n")
	b.WriteString(m.picker.View(accent))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("This chamber tests self-referential logic, not mathematics."))

	return b.String()
}
