package progression

// DefaultQuests is the starter quest catalog.
func DefaultQuests() []Quest {
	return []Quest{
		{
			ID:            "daily_water",
			Title:         "Hydration Hero",
			Description:   "Drink 8 glasses of water today",
			Category:      CategoryHealth,
			Difficulty:    DifficultyEasy,
			Type:          TypeDaily,
			XPReward:      10,
			StatRewards:   StatRewards{StatStrength: 1},
			TimeEstimate:  5,
			Prerequisites: []string{},
		},
		{
			ID:            "daily_reading",
			Title:         "Knowledge Seeker",
			Description:   "Read for 30 minutes",
			Category:      CategoryLearning,
			Difficulty:    DifficultyEasy,
			Type:          TypeDaily,
			XPReward:      15,
			StatRewards:   StatRewards{StatIntelligence: 2},
			TimeEstimate:  30,
			Prerequisites: []string{},
		},
		{
			ID:            "weekly_exercise",
			Title:         "Fitness Warrior",
			Description:   "Exercise 5 times this week",
			Category:      CategoryHealth,
			Difficulty:    DifficultyMedium,
			Type:          TypeWeekly,
			XPReward:      100,
			StatRewards:   StatRewards{StatStrength: 10},
			TimeEstimate:  300,
			Prerequisites: []string{},
		},
	}
}

// DefaultAchievements is the starter achievement catalog.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:           "first_steps",
			Title:        "First Steps",
			Description:  "Complete your first quest",
			Icon:         "🌟",
			Category:     "milestone",
			Requirements: Requirements{QuestCompleteRequirement{Count: 1}},
			Rewards:      Rewards{XP: 50, Items: []string{}, Stats: StatRewards{StatWisdom: 5}},
			Rarity:       RarityCommon,
		},
		{
			ID:           "level_10",
			Title:        "Rising Star",
			Description:  "Reach level 10",
			Icon:         "⭐",
			Category:     "milestone",
			Requirements: Requirements{LevelReachRequirement{Level: 10}},
			Rewards:      Rewards{XP: 200, Items: []string{}, Stats: StatRewards{StatLuck: 10}},
			Rarity:       RarityUncommon,
		},
	}
}

// levelMilestones are the levels whose level_<n> achievement is attempted on level-up.
var levelMilestones = []int{5, 10, 25, 50, 100}
