package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List the shop catalog",
	Long:  `Shows every item for sale with its price and whether you own it.`,
	Args:  cobra.NoArgs,
	Run:   runShop,
}

var buyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy an item",
	Long: `Buy one item from the shop by id. Each item can be owned once.

Examples:
  furnace buy hoodie
  furnace buy toy1`,
	Args: cobra.ExactArgs(1),
	Run:  runBuy,
}

func runShop(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		st := sess.Engine.State()
		catalog := sess.Engine.Catalog()
		items := catalog.List()

		// Calculate column widths
		maxIDLen := 2 // "ID" header
		for _, it := range items {
			if len(it.ID) > maxIDLen {
				maxIDLen = len(it.ID)
			}
		}

		fmt.Printf("Shop: %d items, you have %d coins\n", catalog.Len(), st.TotalCurrency)
		fmt.Println()
		fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxIDLen, "ID", "Name", "Price", "")
		fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxIDLen, "--", "----", "-----", "")
		for _, it := range items {
			note := ""
			switch {
			case st.Owns(it.ID):
				note = "owned"
			case st.TotalCurrency < it.Price:
				note = fmt.Sprintf("need %d more", it.Price-st.TotalCurrency)
			}
			fmt.Printf("  %-*s  %-16s  %6d  %s\n", maxIDLen, it.ID, it.Name, it.Price, note)
		}

		fmt.Println()
		fmt.Println("Run 'furnace buy <id>' to buy an item.")
		return nil
	})
}

func runBuy(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		bought, err := sess.Engine.PurchaseByID(args[0])
		switch {
		case errors.Is(err, shop.ErrUnknownItem):
			return fmt.Errorf("unknown item %q, run 'furnace shop' to see the catalog", args[0])
		case errors.Is(err, game.ErrDuplicateItem):
			return fmt.Errorf("you already own %q", args[0])
		case errors.Is(err, game.ErrInsufficientFunds):
			return fmt.Errorf("not enough coins: %w", err)
		case err != nil:
			return err
		}

		fmt.Printf("Bought %s. Balance: %d\n", bought.Name, sess.Engine.State().TotalCurrency)
		return nil
	})
}
