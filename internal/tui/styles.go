package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/silenttrial-dev/silenttrial/internal/game"
)

// Color constants. Each chamber keeps its own accent, matching the
// trial's escalating palette.
const (
	chamber1Color = "#EF4444" // Red
	chamber2Color = "#F59E0B" // Amber
	chamber3Color = "#10B981" // Emerald
	chamber4Color = "#3B82F6" // Blue
	chamber5Color = "#A855F7" // Purple
	dimColor      = "#6B7280" // Gray
	errorColor    = "#EF4444"
	successColor  = "#10B981"
	goldColor     = "#FACC15"
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box around each screen.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(1, 2)

	// TitleStyle renders the game title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(chamber1Color)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// ErrorStyle renders inline error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// SuccessStyle renders confirmations, like a fresh save code.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(successColor))

	// GoldStyle renders leaderboard highlights.
	GoldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(goldColor)).
			Bold(true)

	// SelectedChoiceStyle highlights the focused witness/judge button.
	SelectedChoiceStyle = lipgloss.NewStyle().
				Reverse(true).
				Bold(true).
				Padding(0, 2)

	// ChoiceStyle renders unfocused choice buttons.
	ChoiceStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// ProgressFullStyle renders cleared chambers in the header.
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(successColor))

	// ProgressEmptyStyle renders chambers still ahead.
	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(dimColor))
)

// chamberColors indexes accents by stage.
var chamberColors = map[game.Stage]string{
	game.StageChamber1: chamber1Color,
	game.StageChamber2: chamber2Color,
	game.StageChamber3: chamber3Color,
	game.StageChamber4: chamber4Color,
	game.StageChamber5: chamber5Color,
}

// AccentStyle returns the accent style for a chamber stage. Non-chamber
// stages fall back to the dim accent.
func AccentStyle(stage game.Stage) lipgloss.Style {
	color, ok := chamberColors[stage]
	if !ok {
		color = dimColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
