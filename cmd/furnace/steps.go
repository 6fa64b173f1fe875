package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var flagStepsAdd int

var stepsCmd = &cobra.Command{
	Use:   "steps [count]",
	Short: "Show or set the manual step reading",
	Long: `Show the manual step reading of the slot, set it, or move it with --add.

The reading stands in for a pedometer: convert turns the steps above the
last converted reading into coins. Readings never go below zero.

Examples:
  furnace steps
  furnace steps 12000
  furnace steps --add 500
  furnace steps --add=-500`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSteps,
}

func init() {
	stepsCmd.Flags().IntVar(&flagStepsAdd, "add", 0, "Add (or with a negative value remove) steps")
}

func runSteps(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			sess.SetSteps(n)
		}
		if flagStepsAdd != 0 {
			sess.SetSteps(sess.Steps() + flagStepsAdd)
		}

		steps := sess.Steps()
		fmt.Printf("Steps: %d (%d ready to convert)\n", steps, sess.Engine.ConvertibleSteps(steps))
		return nil
	})
}
