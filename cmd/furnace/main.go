// furnace is a terminal companion-pet game: walk, convert your steps into
// coins and spend them on your pet.
//
// Usage:
//
//	furnace play                 - Play with your pet in the terminal
//	furnace serve                - Start SSH server, one pet per SSH user
//	furnace status               - Show the pet and its numbers
//	furnace steps [n]            - Show or set the manual step reading
//	furnace convert              - Convert new steps into coins
//	furnace shop                 - List the shop catalog
//	furnace buy <item>           - Buy an item
//	furnace inventory            - List owned items
//	furnace equip <item>         - Equip an owned item
//	furnace clear                - Remove every owned item
//	furnace week [7 values]      - Show or enter the weekly steps
//	furnace reset-currency       - Set the coin balance to zero
//	furnace history              - Show recent events
//	furnace slots                - List or delete save slots
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.furnace/furnace.db)
//	--config <path>     - Path to a custom config YAML
//	--slot <name>       - Save slot to play (default: default)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagSlot     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "furnace",
	Short: "Furnace Pets - a step-powered companion in your terminal",
	Long: `Furnace Pets turns the steps you walk into coins for your companion.

Convert new steps into coins (100 steps = 1 coin), level your pet up as
your converted steps add up, and spend coins on cosmetics in the shop.
Your weekly step log decides whether the pet looks sad, normal or cheerful.

Examples:
  furnace play
  furnace steps 12000
  furnace convert
  furnace buy hoodie
  furnace week 8000 9500 12000 7000 10000 15000 6000
  furnace serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.furnace/furnace.db", "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "default", "Save slot to use")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(resetCurrencyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(slotsCmd)
}
