package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/activity"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var (
	flagWeekDay   string
	flagWeekSteps int
)

var weekCmd = &cobra.Command{
	Use:   "week [mon tue wed thu fri sat sun]",
	Short: "Show or enter the weekly steps",
	Long: `Show the weekly step log, replace it with seven values (Monday first),
or set a single day with --day and --steps.

Values that are not numbers count as 0. The weekly total decides the
pet's look: under 45,000 it is sad, over 75,000 it is cheerful.

Examples:
  furnace week
  furnace week 8000 9500 12000 7000 10000 15000 6000
  furnace week --day fri --steps 11000`,
	Run: runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&flagWeekDay, "day", "", "Single day to set (0-6 or name, Monday first)")
	weekCmd.Flags().IntVar(&flagWeekSteps, "steps", 0, "Steps for --day")
}

func runWeek(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		switch {
		case flagWeekDay != "":
			if len(args) > 0 {
				return fmt.Errorf("use either --day or seven values, not both")
			}
			idx, err := activity.ParseDay(flagWeekDay)
			if err != nil {
				return err
			}
			if err := sess.Engine.SetWeeklyDay(idx, flagWeekSteps); err != nil {
				return err
			}

		case len(args) == activity.DaysInWeek:
			entry := sess.Engine.BeginWeeklyEntry()
			for _, a := range args {
				if err := entry.AddText(a); err != nil {
					return err
				}
			}
			if err := sess.Engine.CommitWeekly(entry); err != nil {
				return err
			}

		case len(args) != 0:
			return fmt.Errorf("expected %d values (Monday to Sunday), got %d", activity.DaysInWeek, len(args))
		}

		snap := sess.Engine.Snapshot(sess.Steps())
		for i, name := range activity.DayNames {
			fmt.Printf("  %-10s %6d\n", name, snap.State.WeeklySteps[i])
		}
		fmt.Println()
		fmt.Printf("  %-10s %6d (%s)\n", "Total", snap.WeeklyTotal, snap.Category)
		return nil
	})
}
