package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silenttrial-dev/silenttrial/internal/savegame"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage saved games",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, kv, _, closeStore, err := openEnvironment()
		if err != nil {
			return err
		}
		defer closeStore()

		snapshots := savegame.NewManager(kv).ListAll()
		if len(snapshots) == 0 {
			fmt.Println("No saved games.")
			return nil
		}

		fmt.Printf("%-10s %-20s %-10s %-8s %s\n", "CODE", "PLAYER", "STAGE", "PASSED", "SAVED")
		for _, s := range snapshots {
			fmt.Printf("%-10s %-20s %-10s %-8d %s\n",
				s.SaveCode, s.PlayerName, s.Stage, s.ChambersPassed,
				s.SavedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, kv, _, closeStore, err := openEnvironment()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := savegame.NewManager(kv).Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}
