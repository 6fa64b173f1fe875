// Package tui provides the Bubble Tea front end of the pet game and the
// Wish SSH server that hosts it remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/furnace-pets/internal/pet"
)

// eventBuffer bounds the pushed events waiting for the model. Extra events
// are dropped; the next one or the fallback tick catches the view up.
const eventBuffer = 16

// TickMsg is sent to refresh the step reading and the pet's mood.
type TickMsg time.Time

// MoodMsg is pushed when the pet's mood changes, including the revert to
// neutral.
type MoodMsg pet.Mood

// StepsMsg is pushed with the new reading after a simulated step tick.
type StepsMsg int

// offer sends msg without blocking the engine or the simulator.
func offer(ch chan<- tea.Msg, msg tea.Msg) {
	select {
	case ch <- msg:
	default:
	}
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
