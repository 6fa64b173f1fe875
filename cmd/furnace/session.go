package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/furnace-pets/internal/config"
	"github.com/vovakirdan/furnace-pets/internal/platform/tui"
	"github.com/vovakirdan/furnace-pets/internal/storage"
)

// newLogger creates the CLI logger at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "furnace",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.furnace/furnace.log for logging while the TUI owns
// the terminal.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".furnace")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "furnace.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustOpenStore opens the saves database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// withSession runs fn against the --slot pet with the manual step source,
// saves, and exits non-zero if fn failed.
func withSession(fn func(*tui.Session) error) {
	cfg := mustLoadConfig()
	cfg.Pedometer.Mode = config.PedometerManual

	logger := newLogger(os.Stderr)
	store := mustOpenStore()

	sess, err := tui.OpenSession(store, flagSlot, cfg, logger)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := fn(sess)

	closeErr := sess.Close()
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error saving game: %v\n", closeErr)
		os.Exit(1)
	}
}
