package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/leaderboard"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

// chamberNames lists the cleared chambers on the victory screen.
var chamberNames = []string{
	game.StageChamber1.Title(),
	game.StageChamber2.Title(),
	game.StageChamber3.Title(),
	game.StageChamber4.Title(),
	game.StageChamber5.Title(),
}

// VictoryModel is the view model for the victory screen.
type VictoryModel struct {
	playerName string
	seconds    int
	board      []leaderboard.Entry
	current    *leaderboard.Entry // this run's entry, nil if unranked
	width      int
	height     int
}

// NewVictoryModel creates the victory view. board is read after this
// run was recorded; current is the entry for this run.
func NewVictoryModel(playerName string, seconds int, board []leaderboard.Entry, current *leaderboard.Entry, width, height int) VictoryModel {
	return VictoryModel{
		playerName: playerName,
		seconds:    seconds,
		board:      board,
		current:    current,
		width:      width,
		height:     height,
	}
}

// Init returns the initial command for the victory view.
func (m VictoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the victory view.
func (m VictoryModel) Update(msg tea.Msg) (VictoryModel, tea.Cmd) {
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

// View renders the victory view.
func (m VictoryModel) View() string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Bold(true).Render("ACQUITTED"))
	b.WriteString("\n\n")

	if m.playerName != "" {
		b.WriteString(fmt.Sprintf("%s, you walk free.\n\n", m.playerName))
	}

	b.WriteString("You successfully navigated all 5 chambers without a single mistake.\n\n")

	b.WriteString(fmt.Sprintf("Time: %s        Rating: %s\n\n",
		tui.GoldStyle.Render(tui.FormatClock(m.seconds)),
		tui.GoldStyle.Render(leaderboard.PerformanceLabel(m.seconds))))

	for i, name := range chamberNames {
		b.WriteString(tui.ProgressFullStyle.Render(fmt.Sprintf("✓ Chamber %d — %s", i+1, name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderLeaderboard(m.board, m.current))

	if m.current != nil && !m.onBoard() && len(m.board) >= leaderboard.MaxEntries {
		b.WriteString(tui.DimStyle.Render("Your run did not crack the top 10 this time."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("You are among the elite few who can distinguish between what is\n")
	b.WriteString("said and what is meant. You read carefully, thought critically,\n")
	b.WriteString("and resisted impulse. This is the mark of true mastery.\n\n")

	b.WriteString(tui.DimStyle.Render("r: play again       Ctrl+C: exit"))

	return b.String()
}

// onBoard reports whether this run's entry survived the truncation.
func (m VictoryModel) onBoard() bool {
	if m.current == nil {
		return false
	}
	for _, entry := range m.board {
		if entry.Name == m.current.Name && entry.Time == m.current.Time && entry.Date.Equal(m.current.Date) {
			return true
		}
	}
	return false
}
