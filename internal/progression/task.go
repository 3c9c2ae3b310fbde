package progression

import (
	"fmt"
	"math"
)

// TaskData is the finished output of the task-creation wizard. FinalXP already includes
// every multiplier; the store takes it as-is.
type TaskData struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    QuestCategory   `json:"category"`
	Difficulty  QuestDifficulty `json:"difficulty"`
	Importance  Importance      `json:"importance,omitempty"`
	Avoidance   Avoidance       `json:"avoidance,omitempty"`
	Urgency     Urgency         `json:"urgency,omitempty"`
	BaseXP      int             `json:"baseXP"`
	FinalXP     int             `json:"finalXP"`
	Bonuses     []Bonus         `json:"bonuses,omitempty"`
}

func categoryStat(c QuestCategory) Stat {
	switch c {
	case CategoryHealth:
		return StatStrength
	case CategoryLearning:
		return StatIntelligence
	case CategoryCreative:
		return StatCreativity
	case CategorySocial:
		return StatSocial
	default:
		return StatWisdom
	}
}

// TaskStatRewards pays max(1, floor(xp/20)) into the category's stat.
func TaskStatRewards(c QuestCategory, xp int) StatRewards {
	amount := int(math.Max(1, math.Floor(float64(xp)/20)))
	return StatRewards{categoryStat(c): amount}
}

// EstimateMinutes maps a difficulty to a time estimate.
func EstimateMinutes(d QuestDifficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 45
	case DifficultyHard:
		return 120
	case DifficultyEpic, DifficultyLegendary:
		return 300
	default:
		return 45
	}
}

type Importance string

const (
	ImportanceLifeChanging Importance = "life-changing"
	ImportanceReallyShould Importance = "really-should"
	ImportanceWouldBeNice  Importance = "would-be-nice"
	ImportanceNotNeeded    Importance = "not-needed"
)

type Avoidance string

const (
	AvoidanceReallyAvoid   Avoidance = "really-avoid"
	AvoidanceKindaDreading Avoidance = "kinda-dreading"
	AvoidanceNeutral       Avoidance = "neutral"
	AvoidanceWantToDo      Avoidance = "want-to-do"
)

type Urgency string

const (
	UrgencyToday      Urgency = "today"
	UrgencyThisWeek   Urgency = "this-week"
	UrgencyThisMonth  Urgency = "this-month"
	UrgencyNoDeadline Urgency = "no-deadline"
)

type factor struct {
	multiplier  float64
	description string
}

var difficultyBaseXP = map[QuestDifficulty]int{
	DifficultyEasy:   15,
	DifficultyMedium: 45,
	DifficultyHard:   115,
	DifficultyEpic:   250,

	// Seed data spells epic as legendary.
	DifficultyLegendary: 250,
}

var importanceFactors = map[Importance]factor{
	ImportanceLifeChanging: {1.5, "+50% XP"},
	ImportanceReallyShould: {1.25, "+25% XP"},
	ImportanceWouldBeNice:  {1.0, "Base XP"},
	ImportanceNotNeeded:    {0.75, "-25% XP"},
}

var avoidanceFactors = map[Avoidance]factor{
	AvoidanceReallyAvoid:   {2.0, "+100% XP!"},
	AvoidanceKindaDreading: {1.5, "+50% XP"},
	AvoidanceNeutral:       {1.0, "Base XP"},
	AvoidanceWantToDo:      {1.25, "+25% XP"},
}

var urgencyFactors = map[Urgency]factor{
	UrgencyToday:      {2.0, "2x XP + Urgent!"},
	UrgencyThisWeek:   {1.5, "1.5x XP"},
	UrgencyThisMonth:  {1.2, "1.2x XP"},
	UrgencyNoDeadline: {1.0, "Base XP"},
}

// TaskOptions are the wizard answers that drive a task's XP.
type TaskOptions struct {
	Difficulty QuestDifficulty
	Importance Importance
	Avoidance  Avoidance
	Urgency    Urgency
}

// TaskXP is the result of CalculateTaskXP.
type TaskXP struct {
	BaseXP     int     `json:"baseXP"`
	FinalXP    int     `json:"finalXP"`
	Bonuses    []Bonus `json:"bonuses"`
	Motivation string  `json:"motivation"`
}

// CalculateTaskXP stacks difficulty x importance x avoidance x urgency.
// Unknown answers fall back to the neutral value.
func CalculateTaskXP(o TaskOptions) TaskXP {
	base, ok := difficultyBaseXP[o.Difficulty]
	if !ok {
		base = difficultyBaseXP[DifficultyMedium]
	}
	imp := lookupFactor(importanceFactors, o.Importance)
	avoid := lookupFactor(avoidanceFactors, o.Avoidance)
	urg := lookupFactor(urgencyFactors, o.Urgency)

	bonuses := []Bonus{}
	if imp.multiplier > 1.0 {
		bonuses = append(bonuses, Bonus{Type: "importance", Multiplier: imp.multiplier, Description: imp.description})
	}
	if avoid.multiplier > 1.0 {
		bonuses = append(bonuses, Bonus{Type: "avoidance", Multiplier: avoid.multiplier, Description: avoid.description})
	}
	if urg.multiplier > 1.0 {
		bonuses = append(bonuses, Bonus{Type: "urgency", Multiplier: urg.multiplier, Description: urg.description})
	}

	final := int(math.Floor(float64(base) * imp.multiplier * avoid.multiplier * urg.multiplier))
	return TaskXP{
		BaseXP:     base,
		FinalXP:    final,
		Bonuses:    bonuses,
		Motivation: motivation(o, final),
	}
}

func lookupFactor[K comparable](m map[K]factor, k K) factor {
	if f, ok := m[k]; ok {
		return f
	}
	return factor{multiplier: 1.0}
}

func motivation(o TaskOptions, xp int) string {
	switch {
	case o.Avoidance == AvoidanceReallyAvoid && o.Importance == ImportanceLifeChanging:
		return fmt.Sprintf("🔥 Conquer your biggest challenge! Massive %d XP awaits!", xp)
	case o.Avoidance == AvoidanceReallyAvoid:
		return fmt.Sprintf("💪 Face your fears! +100%% procrastination bonus = %d XP!", xp)
	case o.Urgency == UrgencyToday:
		return fmt.Sprintf("⚡ Urgent mission! Complete today for %d XP!", xp)
	case o.Importance == ImportanceLifeChanging:
		return fmt.Sprintf("🌟 Life-changing task! Transform yourself for %d XP!", xp)
	case xp > 100:
		return fmt.Sprintf("🎯 Epic reward ahead! Earn %d XP and level up!", xp)
	default:
		return fmt.Sprintf("✨ Build momentum! %d XP towards your next level!", xp)
	}
}
