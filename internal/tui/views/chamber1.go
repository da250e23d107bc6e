package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// Chamber1Model is the view model for THE TERMS. The chamber presents
// an answer field and a question, but any mutation of the field is
// itself a disqualifying answer; only silence passes.
type Chamber1Model struct {
	input  textinput.Model
	width  int
	height int
}

// NewChamber1Model creates the first chamber view.
func NewChamber1Model(width, height int) Chamber1Model {
	ti := textinput.New()
	ti.Placeholder = "Your answer..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	return Chamber1Model{input: ti, width: width, height: height}
}

// Init returns the initial command for the chamber view.
func (m Chamber1Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chamber view.
func (m Chamber1Model) Update(msg tea.Msg) (Chamber1Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			// The field is always empty here, so enter is not an
			// interaction and does not break the silence.
			return m, nil
		case tea.KeyRunes, tea.KeySpace:
			// The first character typed is already an answer. The value
			// is not even stored; the violation is immediate.
			return m, func() tea.Msg {
				return tui.AnswerTypedMsg{}
			}
		}
		return m, nil

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
func (m Chamber1Model) View() string {
	accent := tui.AccentStyle(game.StageChamber1)
	var b strings.Builder

	b.WriteString(accent.Render("CHAMBER 1 — " + game.StageChamber1.Title()))
	b.WriteString("\n\n")

	b.WriteString("Only those who follow ALL instructions exactly may proceed.\n")
	b.WriteString(accent.Render("Do NOT answer this question unless instructed to do so."))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Question displayed below:"))
	b.WriteString("\n")
	b.WriteString("Type YES to continue.\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Remember: Every mistake confirms your guilt."))

	return b.String()
}
