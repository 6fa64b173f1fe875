package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagSlotsDelete string

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List or delete save slots",
	Long: `Lists every saved pet in the database, most recently played first.
With --delete, removes one slot together with its history.

Examples:
  furnace slots
  furnace slots --delete weekend`,
	Args: cobra.NoArgs,
	Run:  runSlots,
}

func init() {
	slotsCmd.Flags().StringVar(&flagSlotsDelete, "delete", "", "Slot to delete")
}

func runSlots(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagSlotsDelete != "" {
		if err := store.DeleteSave(flagSlotsDelete); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error deleting slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted slot %q.\n", flagSlotsDelete)
		return
	}

	slots, err := store.ListSlots()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error listing slots: %v\n", err)
		os.Exit(1)
	}

	if len(slots) == 0 {
		fmt.Println("No saved pets yet.")
		fmt.Println()
		fmt.Println("Run 'furnace play' to start one.")
		return
	}

	fmt.Printf("  %-24s  %s\n", "Slot", "Last saved")
	fmt.Printf("  %-24s  %s\n", "----", "----------")
	for _, s := range slots {
		fmt.Printf("  %-24s  %s\n", s.Slot, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}
