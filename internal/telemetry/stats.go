package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period               string            `json:"period"`
	EventCounts          map[EventType]int `json:"event_counts"`
	PlayersCreated       int               `json:"players_created"`
	TasksCreated         int               `json:"tasks_created"`
	QuestsCompleted      int               `json:"quests_completed"`
	XPAwarded            int               `json:"xp_awarded"`
	LevelUps             int               `json:"level_ups"`
	AchievementsUnlocked int               `json:"achievements_unlocked"`
	QuestsByCategory     map[string]int    `json:"quests_by_category"`
	UnlocksByAchievement map[string]int    `json:"unlocks_by_achievement"`
}

// CalculateStats aggregates progression events recorded since the given time.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:               since.Format("2006-01-02"),
		EventCounts:          make(map[EventType]int),
		QuestsByCategory:     make(map[string]int),
		UnlocksByAchievement: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventPlayerCreated:
			stats.PlayersCreated++
		case EventTaskCreated:
			stats.TasksCreated++
		case EventQuestCompleted:
			stats.QuestsCompleted++
			if category, ok := metadata["category"].(string); ok {
				stats.QuestsByCategory[category]++
			}
		case EventXPAwarded:
			// JSON numbers decode as float64
			if amount, ok := metadata["amount"].(float64); ok {
				stats.XPAwarded += int(amount)
			}
		case EventLevelUp:
			stats.LevelUps++
		case EventAchievementUnlocked:
			stats.AchievementsUnlocked++
			if id, ok := metadata["achievement_id"].(string); ok {
				stats.UnlocksByAchievement[id]++
			}
		}
	}

	return stats, nil
}
