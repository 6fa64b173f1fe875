package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/economy"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pet and its numbers",
	Long: `Print the pet's level, coins, step progress and weekly look.

Examples:
  furnace status
  furnace status --slot weekend`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		steps := sess.Steps()
		snap := sess.Engine.Snapshot(steps)
		st := snap.State

		fmt.Printf("%s (slot %s)\n", sess.Engine.PetName(), sess.Slot)
		fmt.Println()
		fmt.Printf("  %-18s %d\n", "Level", st.PetLevel)
		fmt.Printf("  %-18s %d\n", "Coins", st.TotalCurrency)
		fmt.Printf("  %-18s %d\n", "Steps reading", steps)
		fmt.Printf("  %-18s %d (+%d coins at %d steps per coin)\n", "Ready to convert", snap.Convertible, snap.Preview, economy.StepsPerCoin)
		fmt.Printf("  %-18s %d\n", "Steps converted", st.TotalStepsConverted)
		fmt.Printf("  %-18s %d (%s)\n", "Weekly total", snap.WeeklyTotal, snap.Category)
		if st.LastConversionTime != nil {
			fmt.Printf("  %-18s %s\n", "Last conversion", st.LastConversionTime.Local().Format("2006-01-02 15:04"))
		} else {
			fmt.Printf("  %-18s %s\n", "Last conversion", "never")
		}
		fmt.Printf("  %-18s %d\n", "Items owned", len(st.Inventory))
		return nil
	})
}
