package progression

import "time"

// CharacterClass is a player archetype granting category-specific XP multipliers.
type CharacterClass string

const (
	ClassScholar  CharacterClass = "scholar"
	ClassAthlete  CharacterClass = "athlete"
	ClassCreator  CharacterClass = "creator"
	ClassSocial   CharacterClass = "social"
	ClassExplorer CharacterClass = "explorer"
)

func (c CharacterClass) IsValid() bool {
	switch c {
	case ClassScholar, ClassAthlete, ClassCreator, ClassSocial, ClassExplorer:
		return true
	default:
		return false
	}
}

// QuestCategory groups quests by life area
type QuestCategory string

const (
	CategoryHealth   QuestCategory = "health"
	CategoryLearning QuestCategory = "learning"
	CategorySocial   QuestCategory = "social"
	CategoryWork     QuestCategory = "work"
	CategoryCreative QuestCategory = "creative"
	CategoryPersonal QuestCategory = "personal"
)

func (c QuestCategory) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryLearning, CategorySocial, CategoryWork, CategoryCreative, CategoryPersonal:
		return true
	default:
		return false
	}
}

type QuestDifficulty string

const (
	DifficultyEasy   QuestDifficulty = "easy"
	DifficultyMedium QuestDifficulty = "medium"
	DifficultyHard   QuestDifficulty = "hard"
	DifficultyEpic   QuestDifficulty = "epic"
	// DifficultyLegendary is the seed-data spelling of the top tier.
	DifficultyLegendary QuestDifficulty = "legendary"
)

type QuestType string

const (
	TypeDaily  QuestType = "daily"
	TypeWeekly QuestType = "weekly"
	TypeMain   QuestType = "main"
	TypeSide   QuestType = "side"
)

// Player is a user's character.
type Player struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Avatar          string         `json:"avatar"`
	Level           int            `json:"level"`
	XP              int            `json:"xp"`
	XPToNextLevel   int            `json:"xpToNextLevel"`
	Class           CharacterClass `json:"characterClass"`
	Stats           Stats          `json:"stats"`
	Inventory       []Item         `json:"inventory"`
	Achievements    []string       `json:"achievements"`
	CurrentQuests   []string       `json:"currentQuests"`
	CompletedQuests []string       `json:"completedQuests"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastActive      time.Time      `json:"lastActive"`
}

// Item is an inventory entry. The engine carries it but never reads it.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

func (p *Player) hasAchievement(id string) bool {
	return contains(p.Achievements, id)
}

func (p *Player) hasCompleted(questID string) bool {
	return contains(p.CompletedQuests, questID)
}

func (p Player) clone() Player {
	out := p
	out.Inventory = append([]Item(nil), p.Inventory...)
	out.Achievements = append([]string{}, p.Achievements...)
	out.CurrentQuests = append([]string{}, p.CurrentQuests...)
	out.CompletedQuests = append([]string{}, p.CompletedQuests...)
	return out
}

// Quest is a unit of real-life work that pays out on completion.
type Quest struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      QuestCategory   `json:"category"`
	Difficulty    QuestDifficulty `json:"difficulty"`
	Type          QuestType       `json:"type"`
	XPReward      int             `json:"xpReward"`
	StatRewards   StatRewards     `json:"statRewards"`
	TimeEstimate  int             `json:"timeEstimate"`
	Prerequisites []string        `json:"prerequisites"`
	IsCompleted   bool            `json:"isCompleted"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
	Urgency       string          `json:"urgency,omitempty"`
	// Bonuses are already folded into XPReward.
	Bonuses []Bonus `json:"bonuses,omitempty"`
}

func (q Quest) clone() Quest {
	out := q
	out.StatRewards = q.StatRewards.clone()
	out.Prerequisites = append([]string{}, q.Prerequisites...)
	out.Bonuses = append([]Bonus(nil), q.Bonuses...)
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

// Bonus describes one multiplier that was applied when a task's XP was computed.
type Bonus struct {
	Type        string  `json:"type"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is a one-time unlockable milestone with its own payout.
type Achievement struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Icon         string       `json:"icon"`
	Category     string       `json:"category"`
	Requirements Requirements `json:"requirements"`
	Rewards      Rewards      `json:"rewards"`
	IsHidden     bool         `json:"isHidden"`
	// IsUnlocked is shared by every player.
	IsUnlocked bool       `json:"isUnlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
	Rarity     Rarity     `json:"rarity"`
}

func (a Achievement) clone() Achievement {
	out := a
	out.Requirements = append(Requirements(nil), a.Requirements...)
	out.Rewards.Stats = a.Rewards.Stats.clone()
	out.Rewards.Items = append([]string{}, a.Rewards.Items...)
	if a.UnlockedAt != nil {
		t := *a.UnlockedAt
		out.UnlockedAt = &t
	}
	return out
}

type Rewards struct {
	XP    int         `json:"xp"`
	Items []string    `json:"items"`
	Stats StatRewards `json:"stats"`
}

// LevelResult reports the outcome of an XP award.
type LevelResult struct {
	LeveledUp bool `json:"leveledUp"`
	NewLevel  int  `json:"newLevel"`
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
