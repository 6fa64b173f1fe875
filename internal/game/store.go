package game

import (
	"sync"
	"time"
)

// Store is the durable key/value blob behind one game.
type Store interface {
	// Load returns the last saved blob, or nil when nothing was saved yet.
	Load() ([]byte, error)
	// Save replaces the saved blob.
	Save(blob []byte) error
}

// EventKind names a journaled engine event.
type EventKind string

const (
	EventConvert        EventKind = "convert"
	EventLevelUp        EventKind = "level_up"
	EventPurchase       EventKind = "purchase"
	EventClearInventory EventKind = "clear_inventory"
	EventResetCurrency  EventKind = "reset_currency"
	EventWeekly         EventKind = "weekly"
)

// Event is one entry of the optional activity journal.
type Event struct {
	Kind   EventKind
	Amount int
	Detail string
	At     time.Time
}

// Journal records engine events for the history view.
type Journal interface {
	Record(ev Event) error
}

// MemoryStore keeps the blob in memory. Useful for tests and as a fallback
// when the database cannot be opened.
type MemoryStore struct {
	mu    sync.Mutex
	blob  []byte
	saves int
	fail  error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the saved blob.
func (m *MemoryStore) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, nil
	}
	return append([]byte(nil), m.blob...), nil
}

// Save stores a copy of blob, or returns the injected failure.
func (m *MemoryStore) Save(blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.blob = append([]byte(nil), blob...)
	m.saves++
	return nil
}

// SetFailure makes every following Save fail with err until cleared with nil.
func (m *MemoryStore) SetFailure(err error) {
	m.mu.Lock()
	m.fail = err
	m.mu.Unlock()
}

// Saves returns how many saves succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
