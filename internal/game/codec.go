package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/furnace-pets/internal/activity"
)

// record is the persisted layout of State.
type record struct {
	TotalCurrency           int          `json:"totalCurrency"`
	TotalStepsConverted     int          `json:"totalStepsConverted"`
	LastConversionTime      string       `json:"lastConversionTime,omitempty"`
	PetLevel                int          `json:"petLevel"`
	LastConversionStepCount int          `json:"lastConversionStepCount"`
	Inventory               []recordItem `json:"inventory"`
	WeeklySteps             []int        `json:"weeklySteps"`
}

type recordItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	BaseID string `json:"baseId,omitempty"`
}

// Marshal serializes the full state as one JSON record.
func Marshal(s State) ([]byte, error) {
	rec := record{
		TotalCurrency:           s.TotalCurrency,
		TotalStepsConverted:     s.TotalStepsConverted,
		PetLevel:                s.PetLevel,
		LastConversionStepCount: s.LastConversionStepCount,
		Inventory:               make([]recordItem, 0, len(s.Inventory)),
		WeeklySteps:             s.WeeklySteps[:],
	}
	if s.LastConversionTime != nil {
		rec.LastConversionTime = s.LastConversionTime.UTC().Format(time.RFC3339Nano)
	}
	for _, it := range s.Inventory {
		rec.Inventory = append(rec.Inventory, recordItem{ID: it.ID, Name: it.Name, BaseID: it.BaseID})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("game: cannot encode state: %w", err)
	}
	return data, nil
}

// Unmarshal restores a state from a persisted record. Every field is
// decoded on its own: a missing or malformed field falls back to its
// first-run default instead of failing the load. Only a blob that is not a
// JSON object at all is an error.
func Unmarshal(data []byte) (State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return NewState(), fmt.Errorf("game: cannot decode state: %w", err)
	}

	s := NewState()

	var n int
	if decodeField(fields, "totalCurrency", &n) {
		s.TotalCurrency = max(0, n)
	}
	if decodeField(fields, "totalStepsConverted", &n) {
		s.TotalStepsConverted = max(0, n)
	}
	if decodeField(fields, "lastConversionStepCount", &n) {
		s.LastConversionStepCount = max(0, n)
	}
	if decodeField(fields, "petLevel", &n) && n >= 1 {
		s.PetLevel = n
	}

	var ts string
	if decodeField(fields, "lastConversionTime", &ts) && ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			t = t.UTC()
			s.LastConversionTime = &t
		}
	}

	var items []recordItem
	if decodeField(fields, "inventory", &items) {
		for _, it := range items {
			if it.ID == "" {
				continue
			}
			baseID := it.BaseID
			if baseID == "" {
				baseID = legacyBaseID(it.ID)
			}
			// The first entry of a base id wins; duplicates in a hand-edited
			// or legacy record are dropped to keep ownership unique.
			if s.Owns(baseID) {
				continue
			}
			s.Inventory = append(s.Inventory, InventoryItem{ID: it.ID, Name: it.Name, BaseID: baseID})
		}
	}

	var week []int
	if decodeField(fields, "weeklySteps", &week) {
		for i := 0; i < len(week) && i < activity.DaysInWeek; i++ {
			s.WeeklySteps[i] = max(0, week[i])
		}
	}

	return s, nil
}

// decodeField decodes fields[key] into dst, reporting success.
func decodeField(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// legacyBaseID recovers the catalog id from an id of the form
// "<baseId>-<millis>" written before base ids were stored explicitly.
func legacyBaseID(id string) string {
	i := strings.LastIndex(id, "-")
	if i <= 0 {
		return id
	}
	if _, err := strconv.ParseInt(id[i+1:], 10, 64); err != nil {
		return id
	}
	return id[:i]
}
