// Package game owns the canonical game state and the rules that mutate it:
// step conversion, the shop ledger, weekly activity and persistence.
package game

import (
	"time"

	"github.com/vovakirdan/furnace-pets/internal/activity"
)

// InventoryItem is one owned cosmetic. It never changes after purchase.
type InventoryItem struct {
	ID     string // baseId plus acquisition stamp, unique
	Name   string
	BaseID string // catalog id; at most one entry per BaseID
}

// State is the single persisted aggregate.
type State struct {
	TotalCurrency           int
	TotalStepsConverted     int
	LastConversionStepCount int
	LastConversionTime      *time.Time // nil before the first conversion
	PetLevel                int
	Inventory               []InventoryItem // acquisition order
	WeeklySteps             activity.Week
}

// NewState returns the first-run state.
func NewState() State {
	return State{
		PetLevel:  1,
		Inventory: []InventoryItem{},
	}
}

// Clone returns a deep copy that shares nothing with s.
func (s State) Clone() State {
	out := s
	out.Inventory = make([]InventoryItem, len(s.Inventory))
	copy(out.Inventory, s.Inventory)
	if s.LastConversionTime != nil {
		t := *s.LastConversionTime
		out.LastConversionTime = &t
	}
	return out
}

// Owns reports whether an item with the given base id is in the inventory.
func (s State) Owns(baseID string) bool {
	for _, it := range s.Inventory {
		if it.BaseID == baseID {
			return true
		}
	}
	return false
}

// hasID reports whether an inventory entry already uses id.
func (s State) hasID(id string) bool {
	for _, it := range s.Inventory {
		if it.ID == id {
			return true
		}
	}
	return false
}
