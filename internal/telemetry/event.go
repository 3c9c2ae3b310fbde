package telemetry

import "time"

type EventType string

const (
	EventPlayerCreated       EventType = "player_created"
	EventTaskCreated         EventType = "task_created"
	EventQuestCompleted      EventType = "quest_completed"
	EventXPAwarded           EventType = "xp_awarded"
	EventLevelUp             EventType = "level_up"
	EventAchievementUnlocked EventType = "achievement_unlocked"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
