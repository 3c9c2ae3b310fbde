package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository().WithClock(fixedClock(day, day.Add(time.Hour), day.Add(2*time.Hour)))

	require.NoError(t, repo.RecordEvent(EventPlayerCreated, EventMetadata{"player_id": "p1"}))
	require.NoError(t, repo.RecordEvent(EventXPAwarded, EventMetadata{"player_id": "p1", "amount": 10}))
	require.NoError(t, repo.RecordEvent(EventXPAwarded, EventMetadata{"player_id": "p1", "amount": 5}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.JSONEq(t, `{"player_id":"p1"}`, all[0].Metadata)

	xp, err := repo.GetEvents(day.Add(90*time.Minute), []EventType{EventXPAwarded})
	require.NoError(t, err)
	require.Len(t, xp, 1)
	assert.Equal(t, 3, xp[0].ID)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryRepository_RejectsUnencodableMetadata(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.RecordEvent(EventLevelUp, EventMetadata{"bad": func() {}})
	assert.Error(t, err)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()
	record := func(et EventType, md EventMetadata) {
		t.Helper()
		require.NoError(t, repo.RecordEvent(et, md))
	}

	record(EventPlayerCreated, EventMetadata{"player_id": "p1"})
	record(EventTaskCreated, EventMetadata{"player_id": "p1", "quest_id": "q1", "category": "work"})
	record(EventXPAwarded, EventMetadata{"player_id": "p1", "amount": 15})
	record(EventXPAwarded, EventMetadata{"player_id": "p1", "amount": 50})
	record(EventQuestCompleted, EventMetadata{"player_id": "p1", "quest_id": "daily_reading", "category": "learning"})
	record(EventAchievementUnlocked, EventMetadata{"player_id": "p1", "achievement_id": "first_steps"})
	record(EventLevelUp, EventMetadata{"player_id": "p1", "from": 1, "to": 2})

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stats, err := CalculateStats(events, since)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", stats.Period)
	assert.Equal(t, 1, stats.PlayersCreated)
	assert.Equal(t, 1, stats.TasksCreated)
	assert.Equal(t, 1, stats.QuestsCompleted)
	assert.Equal(t, 65, stats.XPAwarded)
	assert.Equal(t, 1, stats.LevelUps)
	assert.Equal(t, 1, stats.AchievementsUnlocked)
	assert.Equal(t, 2, stats.EventCounts[EventXPAwarded])
	assert.Equal(t, map[string]int{"learning": 1}, stats.QuestsByCategory)
	assert.Equal(t, map[string]int{"first_steps": 1}, stats.UnlocksByAchievement)
}

func TestCalculateStats_SkipsBrokenMetadata(t *testing.T) {
	stats, err := CalculateStats([]Event{
		{ID: 1, Type: EventPlayerCreated, Metadata: "not json"},
		{ID: 2, Type: EventPlayerCreated, Metadata: "{}"},
	}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.EventCounts[EventPlayerCreated])
	assert.Equal(t, 1, stats.PlayersCreated)
}
