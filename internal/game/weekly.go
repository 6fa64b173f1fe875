package game

import (
	"fmt"

	"github.com/vovakirdan/furnace-pets/internal/activity"
)

// SetWeeklyDay sets one slot of the weekly buffer (0 = Monday).
func (e *Engine) SetWeeklyDay(index, value int) error {
	e.mu.Lock()
	next := e.state.Clone()
	if err := next.WeeklySteps.Set(index, value); err != nil {
		e.mu.Unlock()
		return err
	}
	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	e.record(Event{Kind: EventWeekly, Amount: max(0, value), Detail: activity.DayNames[index], At: e.clock.Now().UTC()})
	return nil
}

// BeginWeeklyEntry starts a day-by-day bulk input of the weekly buffer.
// Nothing changes until CommitWeekly is called with a complete entry.
func (e *Engine) BeginWeeklyEntry() *activity.Entry {
	return activity.NewEntry()
}

// CommitWeekly replaces the whole weekly buffer with a complete entry.
// A cancelled or partial entry leaves the buffer untouched.
func (e *Engine) CommitWeekly(entry *activity.Entry) error {
	week, err := entry.Week()
	if err != nil {
		return err
	}
	return e.SetWeek(week)
}

// SetWeek replaces the weekly buffer in one step.
func (e *Engine) SetWeek(week activity.Week) error {
	for i, v := range week {
		if v < 0 {
			return fmt.Errorf("game: negative steps %d for %s", v, activity.DayNames[i])
		}
	}

	e.mu.Lock()
	next := e.state.Clone()
	next.WeeklySteps = week
	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	e.logger.Info("weekly steps updated", "total", week.Total())
	e.record(Event{Kind: EventWeekly, Amount: week.Total(), Detail: "week", At: e.clock.Now().UTC()})
	return nil
}
