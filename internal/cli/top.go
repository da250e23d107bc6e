package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silenttrial-dev/silenttrial/internal/leaderboard"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, kv, _, closeStore, err := openEnvironment()
		if err != nil {
			return err
		}
		defer closeStore()

		entries := leaderboard.NewManager(kv).TopTen()
		if len(entries) == 0 {
			fmt.Println("No one has survived the trial yet.")
			return nil
		}

		fmt.Printf("%-4s %-20s %-8s %-12s %s\n", "#", "NAME", "TIME", "RATING", "DATE")
		for i, e := range entries {
			fmt.Printf("%-4d %-20s %-8s %-12s %s\n",
				i+1, e.Name, tui.FormatClock(e.Time), e.Performance, tui.FormatDate(e.Date))
		}
		return nil
	},
}
