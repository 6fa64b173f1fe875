// Package pet derives the companion's mood, level and appearance from
// engine events.
package pet

import (
	"sync"
	"time"
)

// Mood is the transient emotional state of the pet. It is never persisted.
type Mood string

const (
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodPlayful Mood = "playful"
)

// Emoji returns the face shown for the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodPlayful:
		return "🤪"
	default:
		return "😐"
	}
}

// Timer is the handle of a scheduled revert. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// RealAfterFunc schedules on the runtime timer.
func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MoodController owns the current mood and the single pending revert task.
// Each trigger cancels the previous revert before scheduling its own, so
// the latest trigger always wins.
type MoodController struct {
	mu        sync.Mutex
	mood      Mood
	pending   Timer
	gen       uint64
	afterFunc AfterFunc
	onChange  func(Mood)
}

// NewMoodController creates a controller starting in MoodNeutral.
// A nil afterFunc uses RealAfterFunc.
func NewMoodController(afterFunc AfterFunc) *MoodController {
	if afterFunc == nil {
		afterFunc = RealAfterFunc
	}
	return &MoodController{
		mood:      MoodNeutral,
		afterFunc: afterFunc,
	}
}

// OnChange registers a callback invoked after every mood change,
// including the automatic revert. It runs outside the controller lock.
func (c *MoodController) OnChange(fn func(Mood)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Mood returns the current mood.
func (c *MoodController) Mood() Mood {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mood
}

// Trigger sets mood for dwell, then reverts to neutral unless another
// trigger arrives first.
func (c *MoodController) Trigger(mood Mood, dwell time.Duration) {
	c.mu.Lock()
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
	gen := c.gen
	c.mood = mood
	c.pending = c.afterFunc(dwell, func() { c.revert(gen) })
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(mood)
	}
}

// revert resets to neutral if no newer trigger has happened since gen.
// A stopped timer whose callback was already running lands here with a
// stale gen and does nothing.
func (c *MoodController) revert(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.mood = MoodNeutral
	c.pending = nil
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(MoodNeutral)
	}
}

// Stop cancels any pending revert and returns the mood to neutral.
func (c *MoodController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
	c.mood = MoodNeutral
}
