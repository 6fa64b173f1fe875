package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/furnace-pets/internal/config"
	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/pet"
	"github.com/vovakirdan/furnace-pets/internal/shop"
	"github.com/vovakirdan/furnace-pets/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) *Session {
	t.Helper()
	sess, err := OpenSession(store, "test", config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { sess.Close() })
	return sess
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelConvertAndBuy(t *testing.T) {
	sess := newTestSession(t, nil)
	sess.Source.Add(5000)

	m := NewModel(sess, 100, 40)
	m = press(m, "c")

	st := sess.Engine.State()
	if st.TotalCurrency != 50 {
		t.Fatalf("Expected 50 coins after convert, got %d", st.TotalCurrency)
	}
	if !strings.Contains(m.status, "+50") {
		t.Errorf("Status = %q", m.status)
	}

	// First catalog item is the hoodie at 50.
	m = press(m, "s", "enter")
	st = sess.Engine.State()
	if len(st.Inventory) != 1 || st.Inventory[0].BaseID != "hoodie" {
		t.Fatalf("Expected hoodie in inventory, got %+v", st.Inventory)
	}

	m = press(m, "enter")
	if !m.statusErr {
		t.Error("Buying an owned item should report an error")
	}
	if sess.Engine.State().TotalCurrency != 0 {
		t.Error("Failed purchase must not change the balance")
	}
}

func TestModelNothingToConvert(t *testing.T) {
	sess := newTestSession(t, nil)
	m := press(NewModel(sess, 80, 24), "c")

	if !m.statusErr {
		t.Error("Expected an error status with zero steps")
	}
}

func TestModelWeeklyEntry(t *testing.T) {
	sess := newTestSession(t, nil)
	m := press(NewModel(sess, 80, 24), "w")

	days := []string{"10000", "12000", "9000", "abc", "11000", "8000", "7000"}
	for _, d := range days {
		m = press(m, d, "enter")
	}

	if m.screen != screenHome {
		t.Fatal("Expected to return home after Sunday")
	}
	got := sess.Engine.State().WeeklySteps
	if got.Total() != 57000 || got[3] != 0 {
		t.Errorf("Weekly = %v", got)
	}
}

func TestModelWeeklyEntryCancel(t *testing.T) {
	sess := newTestSession(t, nil)
	m := press(NewModel(sess, 80, 24), "w", "5000", "enter", "6000", "enter", "esc")

	if m.screen != screenHome {
		t.Fatal("Esc should return home")
	}
	if sess.Engine.State().WeeklySteps.Total() != 0 {
		t.Error("Cancelled entry must not change the weekly buffer")
	}
}

func TestModelClearInventory(t *testing.T) {
	sess := newTestSession(t, nil)
	sess.Source.Add(20000)
	m := press(NewModel(sess, 80, 24), "c", "s", "enter", "down", "enter", "esc", "i", "x")

	if n := len(sess.Engine.State().Inventory); n != 0 {
		t.Errorf("Expected empty inventory, got %d items", n)
	}
	if sess.Engine.State().TotalCurrency != 200-50-30 {
		t.Errorf("Clearing must not refund, balance %d", sess.Engine.State().TotalCurrency)
	}
	if m.View() == "" {
		t.Error("View should render")
	}
}

func TestModelMoodChangeIsPushed(t *testing.T) {
	sess := newTestSession(t, nil)
	m := NewModel(sess, 80, 24)

	sess.Engine.TapPet()
	msg := m.waitForEvent()()
	if msg != MoodMsg(pet.MoodPlayful) {
		t.Fatalf("Expected playful mood message, got %#v", msg)
	}

	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("Model should keep waiting for events")
	}
	if got := next.(Model).snap.Mood; got != pet.MoodPlayful {
		t.Errorf("Mood = %s, want playful", got)
	}
}

func TestModelSimulatedStepsArePushed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Pedometer.Mode = config.PedometerSimulated
	sess, err := OpenSession(nil, "sim", cfg, nil)
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	defer sess.Close()
	m := NewModel(sess, 80, 24)

	steps := sess.sim.Tick()
	msg := m.waitForEvent()()
	if msg != StepsMsg(steps) {
		t.Fatalf("Expected steps message %d, got %#v", steps, msg)
	}

	next, _ := m.Update(msg)
	if got := next.(Model).steps; got != steps {
		t.Errorf("Steps = %d, want %d", got, steps)
	}
}

func TestModelStopsWaitingAfterClose(t *testing.T) {
	sess := newTestSession(t, nil)
	m := NewModel(sess, 80, 24)
	if err := sess.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if msg := m.waitForEvent()(); msg != nil {
		t.Errorf("Expected no message after close, got %#v", msg)
	}
}

func TestNextItemHint(t *testing.T) {
	items := []shop.Item{
		{ID: "hoodie", Name: "Hoodie", Price: 50},
		{ID: "hat", Name: "Hat", Price: 30},
		{ID: "bone", Name: "Bone", Price: 10},
	}
	tests := []struct {
		name string
		snap game.Snapshot
		want string
	}{
		{
			name: "cheapest out of reach",
			snap: game.Snapshot{State: game.State{TotalCurrency: 20}, Convertible: 500},
			want: "500 more steps to the Hat",
		},
		{
			name: "pending steps cover it",
			snap: game.Snapshot{State: game.State{TotalCurrency: 20}, Convertible: 1000},
			want: "Convert now to afford the Hat",
		},
		{
			name: "owned items are skipped",
			snap: game.Snapshot{State: game.State{
				TotalCurrency: 20,
				Inventory:     []game.InventoryItem{{ID: "hat-1", BaseID: "hat"}},
			}},
			want: "3000 more steps to the Hoodie",
		},
		{
			name: "everything affordable",
			snap: game.Snapshot{State: game.State{TotalCurrency: 100}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextItemHint(items, tt.snap); got != tt.want {
				t.Errorf("nextItemHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionPersistsManualSteps(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sess, err := OpenSession(store, "walker", config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	sess.AdjustSteps(3)
	if _, err := sess.Engine.Convert(sess.Steps()); err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	again, err := OpenSession(store, "walker", config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	defer again.Close()

	if again.Steps() != 1500 {
		t.Errorf("Expected 1500 steps restored, got %d", again.Steps())
	}
	if again.Engine.State().TotalCurrency != 15 {
		t.Errorf("Expected 15 coins restored, got %d", again.Engine.State().TotalCurrency)
	}
	if _, err := again.Engine.Convert(again.Steps()); err == nil {
		t.Error("Restored steps were already converted")
	}
}

func TestSlotForUser(t *testing.T) {
	if got := SlotForUser("alice"); got != "ssh:alice" {
		t.Errorf("SlotForUser() = %q", got)
	}
	if got := SlotForUser("  "); got != "ssh:anonymous" {
		t.Errorf("SlotForUser() = %q", got)
	}
}
