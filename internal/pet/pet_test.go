package pet

import (
	"testing"
	"time"
)

// fakeTimer is a manually fired timer.
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func TestMoodStartsNeutral(t *testing.T) {
	c := NewMoodController(nil)
	if c.Mood() != MoodNeutral {
		t.Errorf("Expected neutral, got %s", c.Mood())
	}
}

func TestMoodRevertsAfterDwell(t *testing.T) {
	s := &fakeScheduler{}
	c := NewMoodController(s.AfterFunc)

	c.Trigger(MoodHappy, 2*time.Second)
	if c.Mood() != MoodHappy {
		t.Fatalf("Expected happy, got %s", c.Mood())
	}
	if len(s.timers) != 1 || s.timers[0].d != 2*time.Second {
		t.Fatalf("Expected one 2s timer, got %+v", s.timers)
	}

	s.timers[0].f()
	if c.Mood() != MoodNeutral {
		t.Errorf("Expected neutral after dwell, got %s", c.Mood())
	}
}

func TestMoodLastTriggerWins(t *testing.T) {
	s := &fakeScheduler{}
	c := NewMoodController(s.AfterFunc)

	c.Trigger(MoodHappy, 2*time.Second)
	c.Trigger(MoodPlayful, 1500*time.Millisecond)

	if !s.timers[0].stopped {
		t.Error("First revert should have been cancelled")
	}
	if c.Mood() != MoodPlayful {
		t.Fatalf("Expected playful, got %s", c.Mood())
	}

	// The stale callback fires anyway (it was already running when stopped).
	s.timers[0].f()
	if c.Mood() != MoodPlayful {
		t.Errorf("Stale revert must not reset mood, got %s", c.Mood())
	}

	s.timers[1].f()
	if c.Mood() != MoodNeutral {
		t.Errorf("Expected neutral after second dwell, got %s", c.Mood())
	}
}

func TestMoodOnChange(t *testing.T) {
	s := &fakeScheduler{}
	c := NewMoodController(s.AfterFunc)

	var seen []Mood
	c.OnChange(func(m Mood) { seen = append(seen, m) })

	c.Trigger(MoodPlayful, time.Second)
	s.timers[0].f()

	if len(seen) != 2 || seen[0] != MoodPlayful || seen[1] != MoodNeutral {
		t.Errorf("Unexpected change sequence %v", seen)
	}
}

func TestMoodStop(t *testing.T) {
	s := &fakeScheduler{}
	c := NewMoodController(s.AfterFunc)

	c.Trigger(MoodHappy, time.Second)
	c.Stop()

	if !s.timers[0].stopped {
		t.Error("Stop should cancel the pending revert")
	}
	if c.Mood() != MoodNeutral {
		t.Errorf("Expected neutral after Stop, got %s", c.Mood())
	}
}

func TestLevelsGained(t *testing.T) {
	const threshold = 50000

	tests := []struct {
		name     string
		old, new int
		mode     LevelingMode
		want     int
	}{
		{"below boundary", 10000, 49999, LevelingSingle, 0},
		{"crosses one", 49800, 50200, LevelingSingle, 1},
		{"lands exactly", 49000, 50000, LevelingSingle, 1},
		{"starts on boundary", 50000, 50400, LevelingSingle, 0},
		{"jump over two single", 10000, 120000, LevelingSingle, 1},
		{"jump over two per boundary", 10000, 120000, LevelingPerBoundary, 2},
		{"no change", 60000, 60000, LevelingPerBoundary, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelsGained(tt.old, tt.new, threshold, tt.mode); got != tt.want {
				t.Errorf("LevelsGained(%d, %d) = %d, want %d", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestLevelsGainedBadThreshold(t *testing.T) {
	if got := LevelsGained(0, 100000, 0, LevelingPerBoundary); got != 0 {
		t.Errorf("Zero threshold should award nothing, got %d", got)
	}
}

func TestParseLevelingMode(t *testing.T) {
	if m, err := ParseLevelingMode(""); err != nil || m != LevelingSingle {
		t.Errorf("Empty mode = (%q, %v), want single", m, err)
	}
	if m, err := ParseLevelingMode("per_boundary"); err != nil || m != LevelingPerBoundary {
		t.Errorf("per_boundary = (%q, %v)", m, err)
	}
	if _, err := ParseLevelingMode("double"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		total int
		want  Category
	}{
		{0, CategorySad},
		{44999, CategorySad},
		{45000, CategoryNormal},
		{75000, CategoryNormal},
		{75001, CategoryCheerful},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.total, 45000, 75000); got != tt.want {
			t.Errorf("CategoryFor(%d) = %s, want %s", tt.total, got, tt.want)
		}
	}
}
