package storage

import (
	"github.com/vovakirdan/furnace-pets/internal/game"
)

// Slot is a view of the store scoped to one save slot.
// It lets the engine persist and journal without a direct database dependency.
type Slot struct {
	store *Store
	name  string
}

// Slot returns the view for the named save slot.
func (s *Store) Slot(name string) *Slot {
	return &Slot{store: s, name: name}
}

// Name returns the slot name.
func (s *Slot) Name() string {
	return s.name
}

// Load implements game.Store.
func (s *Slot) Load() ([]byte, error) {
	return s.store.LoadSave(s.name)
}

// Save implements game.Store.
func (s *Slot) Save(blob []byte) error {
	return s.store.WriteSave(s.name, blob)
}

// Record implements game.Journal.
func (s *Slot) Record(ev game.Event) error {
	_, err := s.store.RecordEvent(EventEntry{
		Slot:      s.name,
		Kind:      string(ev.Kind),
		Amount:    ev.Amount,
		Detail:    ev.Detail,
		CreatedAt: ev.At,
	})
	return err
}

// Ensure Slot implements the engine's persistence interfaces
var (
	_ game.Store   = (*Slot)(nil)
	_ game.Journal = (*Slot)(nil)
)
