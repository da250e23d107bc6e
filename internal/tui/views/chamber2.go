package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// Chamber2Model is the view model for THE WITNESS.
type Chamber2Model struct {
	picker choicePicker
	width  int
	height int
}

// NewChamber2Model creates the witness chamber view.
func NewChamber2Model(width, height int) Chamber2Model {
	return Chamber2Model{
		picker: newChoicePicker(
			[]string{"Witness A", "Witness B", "Witness C"},
			[]string{"A", "B", "C"},
			"Type A, B, or C...",
			1,
		),
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the chamber view.
func (m Chamber2Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chamber view.
func (m Chamber2Model) Update(msg tea.Msg) (Chamber2Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == tui.KeyEnter {
			raw := m.picker.Value()
			if raw == "" {
				// Submission is disabled until an answer is chosen.
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
func (m Chamber2Model) View() string {
	accent := tui.AccentStyle(game.StageChamber2)
	var b strings.Builder

	b.WriteString(accent.Render("CHAMBER 2 — " + game.StageChamber2.Title()))
	b.WriteString("\n\n")

	b.WriteString("Three witnesses testify.\n")
	for _, line := range []string{
		"One always tells the truth.",
		"One always lies.",
		"One alternates.",
	} {
		b.WriteString(tui.DimStyle.Render("• " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(accent.Render("Witness A:"))
	b.WriteString(` "B is lying."` + "\n")
	b.WriteString(accent.Render("Witness B:"))
	b.WriteString(` "C is telling the truth."` + "\n")
	b.WriteString(accent.Render("Witness C:"))
	b.WriteString(` "A is lying."` + "\n\n")

	b.WriteString("Who is the truth-teller?\n\n")
	b.WriteString(m.picker.View(accent))

	return b.String()
}
