package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/furnace-pets/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadMissingSlot(t *testing.T) {
	store := openTestStore(t)

	blob, err := store.LoadSave("nobody")
	if err != nil {
		t.Fatalf("LoadSave() failed: %v", err)
	}
	if blob != nil {
		t.Errorf("Expected nil blob for missing slot, got %q", blob)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.WriteSave("default", []byte(`{"totalCurrency":1}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}
	if err := store.WriteSave("default", []byte(`{"totalCurrency":2}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}
	if err := store.WriteSave("other", []byte(`{"totalCurrency":9}`)); err != nil {
		t.Fatalf("WriteSave() failed: %v", err)
	}

	blob, err := store.LoadSave("default")
	if err != nil {
		t.Fatalf("LoadSave() failed: %v", err)
	}
	if string(blob) != `{"totalCurrency":2}` {
		t.Errorf("Expected latest blob, got %q", blob)
	}

	slots, err := store.ListSlots()
	if err != nil {
		t.Fatalf("ListSlots() failed: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("Expected 2 slots, got %d", len(slots))
	}
}

func TestStoreDeleteSave(t *testing.T) {
	store := openTestStore(t)

	store.WriteSave("gone", []byte(`{}`))
	store.SetManualSteps("gone", 1200)
	store.RecordEvent(EventEntry{Slot: "gone", Kind: "convert", Amount: 12})

	if err := store.DeleteSave("gone"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	blob, _ := store.LoadSave("gone")
	if blob != nil {
		t.Error("Save should be removed")
	}
	steps, _ := store.ManualSteps("gone")
	if steps != 0 {
		t.Errorf("Expected manual steps reset, got %d", steps)
	}
	events, _ := store.RecentEvents("gone", 10)
	if len(events) != 0 {
		t.Errorf("Expected no events, got %d", len(events))
	}
}

func TestStoreEventsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, kind := range []string{"convert", "purchase", "clear_inventory"} {
		_, err := store.RecordEvent(EventEntry{
			Slot:      "default",
			Kind:      kind,
			Amount:    i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordEvent() failed: %v", err)
		}
	}
	store.RecordEvent(EventEntry{Slot: "other", Kind: "convert"})

	events, err := store.RecentEvents("default", 10)
	if err != nil {
		t.Fatalf("RecentEvents() failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Kind != "clear_inventory" || events[2].Kind != "convert" {
		t.Errorf("Events not ordered newest first: %+v", events)
	}
	if events[0].ID == "" {
		t.Error("Event id should be generated")
	}
	if !events[1].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("CreatedAt = %v, want %v", events[1].CreatedAt, base.Add(time.Minute))
	}
}

func TestStoreEventsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.RecordEvent(EventEntry{Slot: "default", Kind: "convert", Amount: i})
	}

	events, err := store.RecentEvents("default", 5)
	if err != nil {
		t.Fatalf("RecentEvents() failed: %v", err)
	}
	if len(events) != 5 {
		t.Errorf("Expected 5 events, got %d", len(events))
	}
}

func TestStoreManualSteps(t *testing.T) {
	store := openTestStore(t)

	steps, err := store.ManualSteps("default")
	if err != nil {
		t.Fatalf("ManualSteps() failed: %v", err)
	}
	if steps != 0 {
		t.Errorf("Expected 0 for unset slot, got %d", steps)
	}

	if err := store.SetManualSteps("default", 4500); err != nil {
		t.Fatalf("SetManualSteps() failed: %v", err)
	}
	if err := store.SetManualSteps("default", 5000); err != nil {
		t.Fatalf("SetManualSteps() failed: %v", err)
	}

	steps, _ = store.ManualSteps("default")
	if steps != 5000 {
		t.Errorf("Expected 5000, got %d", steps)
	}
}

func TestSlotBacksEngine(t *testing.T) {
	store := openTestStore(t)
	slot := store.Slot("alice")

	engine := game.New(slot, game.WithJournal(slot))
	if _, err := engine.Convert(12345); err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reloaded := game.New(store.Slot("alice"))
	defer reloaded.Close()

	st := reloaded.State()
	if st.TotalCurrency != 123 || st.LastConversionStepCount != 12345 {
		t.Errorf("Reloaded state = %+v", st)
	}

	fresh := game.New(store.Slot("bob"))
	defer fresh.Close()
	if fresh.State().TotalCurrency != 0 {
		t.Error("Slots should not share state")
	}

	events, err := store.RecentEvents("alice", 10)
	if err != nil {
		t.Fatalf("RecentEvents() failed: %v", err)
	}
	if len(events) == 0 || events[0].Kind != string(game.EventConvert) {
		t.Errorf("Expected a convert event, got %+v", events)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Just verify nested directories are created
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
