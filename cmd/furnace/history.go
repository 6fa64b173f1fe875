package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent events",
	Long: `Display the latest conversions, level-ups, purchases and other changes
of the slot, newest first.

Examples:
  furnace history
  furnace history --limit 50 --slot weekend`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of events to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	events, err := store.RecentEvents(flagSlot, flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("History - %s\n", flagSlot)
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("Nothing happened yet.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-16s  %8s  %s\n", "Date", "Event", "Amount", "Detail")
	fmt.Printf("  %-16s  %-16s  %8s  %s\n", "----", "-----", "------", "------")

	for _, e := range events {
		dateStr := e.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-16s  %8d  %s\n", dateStr, e.Kind, e.Amount, e.Detail)
	}
}
