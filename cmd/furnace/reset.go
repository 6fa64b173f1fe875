package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var resetCurrencyCmd = &cobra.Command{
	Use:   "reset-currency",
	Short: "Set the coin balance to zero",
	Long: `Development helper: sets the coin balance to zero. Level, steps and
inventory are kept.`,
	Args: cobra.NoArgs,
	Run:  runResetCurrency,
}

func runResetCurrency(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		sess.Engine.ResetCurrency()
		fmt.Println("Coins reset to 0.")
		return nil
	})
}
