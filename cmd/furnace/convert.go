package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert new steps into coins",
	Long: `Convert the steps walked since the last conversion into coins
(100 steps = 1 coin, remainders are dropped). Your pet levels up every
50,000 converted steps.

Examples:
  furnace steps 12345 && furnace convert`,
	Args: cobra.NoArgs,
	Run:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		before := sess.Engine.State()
		steps := sess.Steps()
		eligible := sess.Engine.ConvertibleSteps(steps)

		amount, err := sess.Engine.Convert(steps)
		if errors.Is(err, game.ErrNothingToConvert) {
			return errors.New("no new steps to convert, go for a walk")
		}
		if err != nil {
			return err
		}

		after := sess.Engine.State()
		fmt.Printf("Converted %d steps into %d coins. Balance: %d\n", eligible, amount, after.TotalCurrency)
		if after.PetLevel > before.PetLevel {
			fmt.Printf("%s reached level %d!\n", sess.Engine.PetName(), after.PetLevel)
		}
		return nil
	})
}
