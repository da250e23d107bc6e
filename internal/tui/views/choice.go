// Package views provides the per-screen Bubble Tea models of the trial.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// choicePicker is the dual input mode used by the witness and judge
// chambers: a row of selectable buttons plus a short free-text field.
// Selecting a button clears the text and typing clears the selection,
// so exactly one mode feeds the submitted answer.
type choicePicker struct {
	labels   []string // rendered on the buttons, e.g. "Witness A"
	values   []string // submitted answers, e.g. "A"
	selected int      // index into values, -1 when nothing is picked
	input    textinput.Model
}

func newChoicePicker(labels, values []string, placeholder string, charLimit int) choicePicker {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = 24
	ti.Focus()

	return choicePicker{
		labels:   labels,
		values:   values,
		selected: -1,
		input:    ti,
	}
}

// Value returns the answer to submit, preferring the button selection,
// or "" when both modes are empty (submission disabled).
func (p *choicePicker) Value() string {
	if p.selected >= 0 {
		return p.values[p.selected]
	}
	return strings.TrimSpace(p.input.Value())
}

// Update handles one key, arrow keys moving the selection and
// everything else feeding the text field.
func (p *choicePicker) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case tui.KeyLeft:
		if p.selected <= 0 {
			p.selected = 0
		} else {
			p.selected--
		}
		p.input.SetValue("")
		return nil
	case tui.KeyRight:
		if p.selected < len(p.values)-1 {
			p.selected++
		}
		p.input.SetValue("")
		return nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.selected = -1
	}
	return cmd
}

// View renders the button row, the divider, and the text field.
func (p *choicePicker) View(accent lipgloss.Style) string {
	var b strings.Builder

	var buttons []string
	for i, label := range p.labels {
		if i == p.selected {
			buttons = append(buttons, tui.SelectedChoiceStyle.Foreground(accent.GetForeground()).Render(label))
		} else {
			buttons = append(buttons, tui.ChoiceStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("←/→ to pick, or type your answer"))
	b.WriteString("\n")
	b.WriteString(p.input.View())

	return b.String()
}
