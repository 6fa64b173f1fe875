// Package activity turns raw pedometer readings into convertible steps and
// keeps the seven-slot weekly activity buffer.
package activity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DaysInWeek is the fixed length of the weekly buffer.
const DaysInWeek = 7

// DayNames maps slot index to day name. Slot 0 is Monday.
var DayNames = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var (
	ErrDayIndex        = errors.New("activity: day index out of range")
	ErrEntryCancelled  = errors.New("activity: weekly entry cancelled")
	ErrEntryIncomplete = errors.New("activity: weekly entry incomplete")
	ErrEntryComplete   = errors.New("activity: weekly entry already complete")
)

// ParseDay accepts a slot index (0-6) or a day name or prefix of at least
// three letters ("mon", "Tuesday").
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= DaysInWeek {
			return 0, fmt.Errorf("%w: %d", ErrDayIndex, n)
		}
		return n, nil
	}
	if len(s) >= 3 {
		for i, name := range DayNames {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(s)) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrDayIndex, s)
}

// ConvertibleSteps returns the steps accrued since the last conversion.
// A raw reading below the checkpoint (the source reset, e.g. a new day)
// yields zero.
func ConvertibleSteps(rawSteps, lastConversionStepCount int) int {
	return max(0, rawSteps-lastConversionStepCount)
}

// Week holds one step count per day, Monday first.
type Week [DaysInWeek]int

// Total returns the sum of all seven slots.
func (w Week) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Set stores value in the given slot. Negative values are clamped to zero.
func (w *Week) Set(index, value int) error {
	if index < 0 || index >= DaysInWeek {
		return fmt.Errorf("%w: %d", ErrDayIndex, index)
	}
	w[index] = max(0, value)
	return nil
}

// Entry collects a full week of values one day at a time. The collected
// values only become a Week once all seven days are in; a cancelled or
// partial entry never produces one.
type Entry struct {
	values    []int
	cancelled bool
}

// NewEntry starts an empty weekly entry.
func NewEntry() *Entry {
	return &Entry{values: make([]int, 0, DaysInWeek)}
}

// Day returns the index and name of the day awaiting input.
// ok is false once the entry is complete or cancelled.
func (e *Entry) Day() (index int, name string, ok bool) {
	if e.cancelled || len(e.values) >= DaysInWeek {
		return len(e.values), "", false
	}
	return len(e.values), DayNames[len(e.values)], true
}

// Add records the value for the current day.
func (e *Entry) Add(value int) error {
	if e.cancelled {
		return ErrEntryCancelled
	}
	if len(e.values) >= DaysInWeek {
		return ErrEntryComplete
	}
	e.values = append(e.values, max(0, value))
	return nil
}

// AddText parses a user-typed value. Anything that is not a number counts
// as zero.
func (e *Entry) AddText(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		n = 0
	}
	return e.Add(n)
}

// Cancel abandons the entry.
func (e *Entry) Cancel() {
	e.cancelled = true
}

// Complete reports whether all seven days have been entered.
func (e *Entry) Complete() bool {
	return !e.cancelled && len(e.values) == DaysInWeek
}

// Len returns how many days have been entered so far.
func (e *Entry) Len() int {
	return len(e.values)
}

// Week returns the collected week. It fails unless all seven values were
// entered and the entry was not cancelled.
func (e *Entry) Week() (Week, error) {
	var w Week
	if e.cancelled {
		return w, ErrEntryCancelled
	}
	if len(e.values) != DaysInWeek {
		return w, fmt.Errorf("%w: %d of %d days", ErrEntryIncomplete, len(e.values), DaysInWeek)
	}
	copy(w[:], e.values)
	return w, nil
}
