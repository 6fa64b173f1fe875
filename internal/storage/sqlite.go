// Package storage provides SQLite-based persistence for pet saves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection. One database holds any
// number of save slots.
type Store struct {
	db *sql.DB
}

// SlotInfo describes one saved game.
type SlotInfo struct {
	Slot      string
	Size      int
	UpdatedAt time.Time
}

// EventEntry is one journaled engine event.
type EventEntry struct {
	ID        string
	Slot      string
	Kind      string
	Amount    int
	Detail    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SSH sessions write concurrently with the local CLI.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot set WAL mode: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			blob TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			kind TEXT NOT NULL,
			amount INTEGER NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_slot ON events(slot, created_at DESC);

		CREATE TABLE IF NOT EXISTS manual_steps (
			slot TEXT PRIMARY KEY,
			steps INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadSave returns the blob saved under slot, or nil if there is none.
func (s *Store) LoadSave(slot string) ([]byte, error) {
	var blob string
	err := s.db.QueryRow("SELECT blob FROM saves WHERE slot = ?", slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load save %q: %w", slot, err)
	}
	return []byte(blob), nil
}

// WriteSave replaces the blob saved under slot.
func (s *Store) WriteSave(slot string, blob []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, blob, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		slot, string(blob), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write save %q: %w", slot, err)
	}
	return nil
}

// DeleteSave removes a slot together with its journal and step override.
func (s *Store) DeleteSave(slot string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	for _, q := range []string{
		"DELETE FROM saves WHERE slot = ?",
		"DELETE FROM events WHERE slot = ?",
		"DELETE FROM manual_steps WHERE slot = ?",
	} {
		if _, err := tx.Exec(q, slot); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot delete slot %q: %w", slot, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// ListSlots returns all saved slots, most recently updated first.
func (s *Store) ListSlots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, LENGTH(blob), updated_at FROM saves ORDER BY updated_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updated int64
		if err := rows.Scan(&info.Slot, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = time.UnixMilli(updated).UTC()
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// RecordEvent journals one event and returns its generated id.
func (s *Store) RecordEvent(e EventEntry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO events (id, slot, kind, amount, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Slot, e.Kind, e.Amount, e.Detail, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record event: %w", err)
	}
	return e.ID, nil
}

// RecentEvents returns the latest journal entries of a slot, newest first.
func (s *Store) RecentEvents(slot string, limit int) ([]EventEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, slot, kind, amount, detail, created_at
		 FROM events
		 WHERE slot = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []EventEntry
	for rows.Next() {
		var e EventEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Slot, &e.Kind, &e.Amount, &e.Detail, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created).UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ManualSteps returns the manual step override of a slot (0 when unset).
func (s *Store) ManualSteps(slot string) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow("SELECT steps FROM manual_steps WHERE slot = ?", slot).Scan(&steps)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query manual steps: %w", err)
	}
	if !steps.Valid {
		return 0, nil
	}
	return int(steps.Int64), nil
}

// SetManualSteps stores the manual step override of a slot.
func (s *Store) SetManualSteps(slot string, steps int) error {
	_, err := s.db.Exec(
		`INSERT INTO manual_steps (slot, steps, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET steps = excluded.steps, updated_at = excluded.updated_at`,
		slot, steps, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save manual steps: %w", err)
	}
	return nil
}
