package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/furnace-pets/internal/config"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
	"github.com/vovakirdan/furnace-pets/internal/storage"
)

var flagSimulate bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with your pet",
	Long: `Open the pet screen in the terminal.

Controls:
  c          - Convert new steps into coins
  Space/P    - Pet your companion
  +/-        - Adjust the manual step reading
  S          - Shop
  I          - Inventory (Enter/E equip, X clear all)
  W          - Enter this week's steps day by day (Esc cancels)
  Shift+R    - Reset coins to zero
  ?          - More help
  Q/Ctrl+C   - Quit

Examples:
  furnace play
  furnace play --slot weekend
  furnace play --simulate`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSimulate, "simulate", false, "Use the simulated pedometer regardless of config")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	if flagSimulate {
		cfg.Pedometer.Mode = config.PedometerSimulated
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logFile = nil
	}
	var logOut io.Writer = io.Discard
	if logFile != nil {
		logOut = logFile
		defer logFile.Close()
	}
	logger := newLogger(logOut)

	// Open saves storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without storage - the pet lives in memory only
		store = nil
	}

	sess, err := tui.OpenSession(store, flagSlot, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sess.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	runErr := tui.Run(sess, width, height)

	// Save and close store before potential exit
	if err := sess.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save game: %v\n", err)
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
