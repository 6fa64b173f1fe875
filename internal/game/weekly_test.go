package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/furnace-pets/internal/activity"
	"github.com/vovakirdan/furnace-pets/internal/pet"
)

func TestWeeklyEntryCancelledLeavesBufferUnchanged(t *testing.T) {
	e, _, _ := newTestEngine(t, NewMemoryStore())
	require.NoError(t, e.SetWeek(activity.Week{1, 2, 3, 4, 5, 6, 7}))
	before := e.State().WeeklySteps

	entry := e.BeginWeeklyEntry()
	for _, v := range []int{9000, 9000, 9000} {
		require.NoError(t, entry.Add(v))
	}
	entry.Cancel()

	err := e.CommitWeekly(entry)
	assert.ErrorIs(t, err, activity.ErrEntryCancelled)
	assert.Equal(t, before, e.State().WeeklySteps)
}

func TestWeeklyEntryPartialRejected(t *testing.T) {
	e, _, _ := newTestEngine(t, NewMemoryStore())

	entry := e.BeginWeeklyEntry()
	require.NoError(t, entry.Add(5000))

	err := e.CommitWeekly(entry)
	assert.ErrorIs(t, err, activity.ErrEntryIncomplete)
	assert.Equal(t, activity.Week{}, e.State().WeeklySteps)
}

func TestWeeklyEntryCommit(t *testing.T) {
	e, _, _ := newTestEngine(t, NewMemoryStore())
	assert.Equal(t, pet.CategorySad, e.Category())

	entry := e.BeginWeeklyEntry()
	for i := 0; i < activity.DaysInWeek; i++ {
		require.NoError(t, entry.Add(8000))
	}
	require.NoError(t, e.CommitWeekly(entry))

	st := e.State()
	assert.Equal(t, 56000, st.WeeklySteps.Total())
	assert.Equal(t, pet.CategoryNormal, e.Category())
}

func TestSetWeeklyDay(t *testing.T) {
	e, _, _ := newTestEngine(t, NewMemoryStore())

	require.NoError(t, e.SetWeeklyDay(6, 12000))
	assert.Equal(t, 12000, e.State().WeeklySteps[6])

	err := e.SetWeeklyDay(7, 100)
	assert.ErrorIs(t, err, activity.ErrDayIndex)
}

func TestSetWeekRejectsNegative(t *testing.T) {
	e, _, _ := newTestEngine(t, NewMemoryStore())
	err := e.SetWeek(activity.Week{0, 0, -1, 0, 0, 0, 0})
	assert.Error(t, err)
	assert.Equal(t, activity.Week{}, e.State().WeeklySteps)
}
