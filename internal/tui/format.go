package tui

import (
	"fmt"
	"time"
)

// FormatClock renders whole seconds as m:ss for the timer readout and
// the leaderboard.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDate renders a leaderboard date, e.g. "Mar 14, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
