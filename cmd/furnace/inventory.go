package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
)

var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "List owned items",
	Long:    `Shows the items you own in the order you bought them.`,
	Args:    cobra.NoArgs,
	Run:     runInventory,
}

var equipCmd = &cobra.Command{
	Use:   "equip <item>",
	Short: "Equip an owned item",
	Long: `Equip an item you own, by base id or full item id.

Equipping does not change your pet yet.`,
	Args: cobra.ExactArgs(1),
	Run:  runEquip,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every owned item",
	Long:  `Empties the inventory. Coins spent on the items are not refunded.`,
	Args:  cobra.NoArgs,
	Run:   runClear,
}

func runInventory(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		inv := sess.Engine.State().Inventory
		if len(inv) == 0 {
			fmt.Println("Your inventory is empty.")
			fmt.Println()
			fmt.Println("Run 'furnace shop' to see what's for sale.")
			return nil
		}

		fmt.Printf("  %-4s  %-16s  %s\n", "#", "Name", "Id")
		fmt.Printf("  %-4s  %-16s  %s\n", "-", "----", "--")
		for i, it := range inv {
			fmt.Printf("  %-4d  %-16s  %s\n", i+1, it.Name, it.ID)
		}
		return nil
	})
}

func runEquip(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		for _, it := range sess.Engine.State().Inventory {
			if it.ID == args[0] || it.BaseID == args[0] {
				if err := sess.Engine.Equip(it); err != nil {
					return err
				}
				fmt.Printf("%s: equipping is coming soon.\n", it.Name)
				return nil
			}
		}
		if !sess.Engine.Catalog().Exists(args[0]) {
			return fmt.Errorf("unknown item %q, run 'furnace shop' to see the catalog", args[0])
		}
		return fmt.Errorf("you don't own %q", args[0])
	})
}

func runClear(cmd *cobra.Command, args []string) {
	withSession(func(sess *tui.Session) error {
		n := len(sess.Engine.State().Inventory)
		sess.Engine.ClearInventory()
		fmt.Printf("Removed %d items.\n", n)
		return nil
	})
}
