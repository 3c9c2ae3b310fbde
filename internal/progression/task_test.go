package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTaskXP_Defaults(t *testing.T) {
	got := CalculateTaskXP(TaskOptions{})

	assert.Equal(t, 45, got.BaseXP)
	assert.Equal(t, 45, got.FinalXP)
	assert.Empty(t, got.Bonuses)
	assert.Equal(t, "✨ Build momentum! 45 XP towards your next level!", got.Motivation)
}

func TestCalculateTaskXP_StacksMultipliers(t *testing.T) {
	got := CalculateTaskXP(TaskOptions{
		Difficulty: DifficultyHard,
		Importance: ImportanceLifeChanging,
		Avoidance:  AvoidanceReallyAvoid,
		Urgency:    UrgencyToday,
	})

	assert.Equal(t, 115, got.BaseXP)
	assert.Equal(t, 690, got.FinalXP)
	assert.Len(t, got.Bonuses, 3)
	assert.Equal(t, "importance", got.Bonuses[0].Type)
	assert.Equal(t, "🔥 Conquer your biggest challenge! Massive 690 XP awaits!", got.Motivation)
}

func TestCalculateTaskXP_LegendaryMatchesEpic(t *testing.T) {
	epic := CalculateTaskXP(TaskOptions{Difficulty: DifficultyEpic})
	legendary := CalculateTaskXP(TaskOptions{Difficulty: DifficultyLegendary})

	assert.Equal(t, 250, legendary.BaseXP)
	assert.Equal(t, epic.FinalXP, legendary.FinalXP)
}

func TestCalculateTaskXP_PenaltyIsNotABonus(t *testing.T) {
	got := CalculateTaskXP(TaskOptions{Difficulty: DifficultyEasy, Importance: ImportanceNotNeeded})

	assert.Equal(t, 11, got.FinalXP)
	assert.Empty(t, got.Bonuses)
}

func TestCalculateTaskXP_Motivation(t *testing.T) {
	assert.Equal(t, "⚡ Urgent mission! Complete today for 90 XP!",
		CalculateTaskXP(TaskOptions{Difficulty: DifficultyMedium, Urgency: UrgencyToday}).Motivation)
	assert.Equal(t, "🎯 Epic reward ahead! Earn 250 XP and level up!",
		CalculateTaskXP(TaskOptions{Difficulty: DifficultyEpic}).Motivation)
}

func TestClassMultiplier(t *testing.T) {
	assert.Equal(t, 1.5, ClassMultiplier(ClassScholar, CategoryLearning))
	assert.Equal(t, 1.2, ClassMultiplier(ClassScholar, CategoryWork))
	assert.Equal(t, 1.0, ClassMultiplier(ClassScholar, CategoryHealth))
	assert.Equal(t, 1.5, ClassMultiplier(ClassExplorer, CategoryPersonal))
	assert.Equal(t, 1.2, ClassMultiplier(ClassExplorer, CategorySocial))
	assert.Equal(t, 1.0, ClassMultiplier("wizard", CategoryLearning))
}

func TestStats_Apply(t *testing.T) {
	s := Stats{Luck: 1}
	s.Apply(StatRewards{StatLuck: 2, StatWisdom: 0, "charisma": 5})

	assert.Equal(t, Stats{Luck: 3}, s)
}
