package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/leaderboard"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// IntroModel is the view model for the intro screen: the briefing, the
// name prompt, the leaderboard, and the expandable resume form.
type IntroModel struct {
	nameInput textinput.Model
	codeInput textinput.Model
	loadMode  bool
	errText   string
	board     []leaderboard.Entry
	width     int
	height    int
}

// NewIntroModel creates the intro view with the current leaderboard.
func NewIntroModel(board []leaderboard.Entry, width, height int) IntroModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = game.MaxNameLen
	name.Width = 30
	name.Focus()

	code := textinput.New()
	code.Placeholder = "XXXXXXXX"
	code.CharLimit = 8
	code.Width = 12

	return IntroModel{
		nameInput: name,
		codeInput: code,
		board:     board,
		width:     width,
		height:    height,
	}
}

// Init returns the initial command for the intro view.
func (m IntroModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the intro view.
func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEnter:
			if m.loadMode {
				code := strings.ToUpper(strings.TrimSpace(m.codeInput.Value()))
				if code == "" {
					m.errText = "Please enter a save code."
					return m, nil
				}
				return m, func() tea.Msg {
					return tui.LoadRequestMsg{Code: code}
				}
			}
			name := m.nameInput.Value()
			return m, func() tea.Msg {
				return tui.SubmitNameMsg{Name: name}
			}
		case "ctrl+l", tui.KeyTab:
			m.loadMode = !m.loadMode
			m.errText = ""
			if m.loadMode {
				m.nameInput.Blur()
				m.codeInput.Focus()
			} else {
				m.codeInput.Blur()
				m.nameInput.Focus()
			}
			return m, textinput.Blink
		case tui.KeyEsc:
			if m.loadMode {
				m.loadMode = false
				m.codeInput.Blur()
				m.nameInput.Focus()
			}
			return m, nil
		}

	case tui.NameErrorMsg:
		m.errText = msg.Err.Error()
		return m, nil

	case tui.LoadErrorMsg:
		m.errText = msg.Message
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Route everything else to whichever field is active; typing
	// clears stale errors.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errText = ""
	}
	if m.loadMode {
		m.codeInput, cmd = m.codeInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

// View renders the intro view.
func (m IntroModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("THE SILENT TRIAL"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Legal Logic • Meta-Rules • Self-Referencing Traps"))
	b.WriteString("\n\n")

	b.WriteString(tui.ErrorStyle.Render(`"Every mistake confirms your guilt."`))
	b.WriteString("\n\n")

	b.WriteString("There are 5 Chambers.\n")
	b.WriteString("Each chamber is a logical test disguised as instructions.\n\n")

	for _, rule := range []string{
		"Any wrong input = elimination",
		"Rules contradict expectations",
		"Silence may be an answer",
		"Read everything carefully",
	} {
		b.WriteString(tui.DimStyle.Render("• " + rule))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.loadMode {
		b.WriteString("Enter your save code:\n\n")
		b.WriteString(m.codeInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString("Enter your name to begin:\n\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	if len(m.board) > 0 {
		b.WriteString("\n")
		b.WriteString(renderLeaderboard(m.board, nil))
	}

	b.WriteString("\n")
	if m.loadMode {
		b.WriteString(tui.DimStyle.Render("Enter: resume       Esc: back       Ctrl+C: exit"))
	} else {
		b.WriteString(tui.DimStyle.Render("Enter: begin the trial       Ctrl+L: resume saved game       Ctrl+C: exit"))
	}

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

// renderLeaderboard prints the top runs, highlighting current if it
// appears on the board.
func renderLeaderboard(board []leaderboard.Entry, current *leaderboard.Entry) string {
	var b strings.Builder

	b.WriteString(tui.GoldStyle.Render("HALL OF THE ACQUITTED"))
	b.WriteString("\n")
	if len(board) == 0 {
		b.WriteString(tui.DimStyle.Render("No one has survived the trial yet."))
		b.WriteString("\n")
		return b.String()
	}

	for i, entry := range board {
		line := fmt.Sprintf("%2d. %-20s %6s  %-11s %s",
			i+1, entry.Name, tui.FormatClock(entry.Time), entry.Performance, tui.FormatDate(entry.Date))
		if current != nil && entry.Name == current.Name && entry.Time == current.Time && entry.Date.Equal(current.Date) {
			b.WriteString(tui.GoldStyle.Render(line))
		} else if i == 0 {
			b.WriteString(tui.SuccessStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
