// Package pedometer provides the raw step sources the game converts from:
// a manual override and a cron-driven simulator.
package pedometer

import (
	"sync"

	"github.com/vovakirdan/furnace-pets/internal/config"
)

// Source reports a monotonic-ish raw step count. Add adjusts the reading
// and returns the new value; readings never go below zero.
type Source interface {
	Steps() int
	Add(delta int) int
}

// Manual is a step count set by hand.
type Manual struct {
	mu    sync.Mutex
	steps int
}

// NewManual returns a manual source starting at initial (clamped to 0).
func NewManual(initial int) *Manual {
	return &Manual{steps: max(0, initial)}
}

// Steps returns the current reading.
func (m *Manual) Steps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps
}

// Set replaces the reading.
func (m *Manual) Set(steps int) {
	m.mu.Lock()
	m.steps = max(0, steps)
	m.mu.Unlock()
}

// Add moves the reading by delta.
func (m *Manual) Add(delta int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = max(0, m.steps+delta)
	return m.steps
}

// New builds the source selected by cfg. initial seeds a manual source and
// is ignored in simulated mode.
func New(cfg config.PedometerConfig, initial int, opts ...Option) Source {
	if cfg.Mode == config.PedometerSimulated {
		return NewSimulated(cfg, opts...)
	}
	return NewManual(initial)
}
