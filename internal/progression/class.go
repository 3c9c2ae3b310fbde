package progression

type classBonus struct {
	primary   QuestCategory
	secondary QuestCategory
}

const (
	primaryClassMultiplier   = 1.5
	secondaryClassMultiplier = 1.2
)

var classBonuses = map[CharacterClass]classBonus{
	ClassScholar:  {primary: CategoryLearning, secondary: CategoryWork},
	ClassAthlete:  {primary: CategoryHealth, secondary: CategoryPersonal},
	ClassCreator:  {primary: CategoryCreative, secondary: CategoryPersonal},
	ClassSocial:   {primary: CategorySocial, secondary: CategoryWork},
	ClassExplorer: {primary: CategoryPersonal, secondary: CategorySocial},
}

// ClassMultiplier returns the XP multiplier a class earns on a quest category.
// Pairs without a bonus multiply by 1.0.
func ClassMultiplier(class CharacterClass, category QuestCategory) float64 {
	b, ok := classBonuses[class]
	if !ok {
		return 1.0
	}
	switch category {
	case b.primary:
		return primaryClassMultiplier
	case b.secondary:
		return secondaryClassMultiplier
	default:
		return 1.0
	}
}

// ClassInfo is the character-creation description of a class.
type ClassInfo struct {
	Class         CharacterClass `json:"class"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Bonuses       []string       `json:"bonuses"`
	StartingStats Stats          `json:"startingStats"`
	Emoji         string         `json:"emoji"`
}

var classInfos = []ClassInfo{
	{
		Class:         ClassScholar,
		Name:          "Scholar",
		Description:   "Masters of knowledge and learning",
		Bonuses:       []string{"50% bonus XP for learning tasks", "20% bonus for work tasks"},
		StartingStats: Stats{Strength: 8, Intelligence: 15, Creativity: 10, Social: 8, Wisdom: 12, Luck: 7},
		Emoji:         "📚",
	},
	{
		Class:         ClassAthlete,
		Name:          "Athlete",
		Description:   "Champions of physical fitness and health",
		Bonuses:       []string{"50% bonus XP for health tasks", "20% bonus for personal tasks"},
		StartingStats: Stats{Strength: 15, Intelligence: 8, Creativity: 7, Social: 10, Wisdom: 10, Luck: 10},
		Emoji:         "💪",
	},
	{
		Class:         ClassCreator,
		Name:          "Creator",
		Description:   "Artists and innovators of the world",
		Bonuses:       []string{"50% bonus XP for creative tasks", "20% bonus for personal tasks"},
		StartingStats: Stats{Strength: 7, Intelligence: 12, Creativity: 15, Social: 8, Wisdom: 10, Luck: 8},
		Emoji:         "🎨",
	},
	{
		Class:         ClassSocial,
		Name:          "Social",
		Description:   "Masters of relationships and communication",
		Bonuses:       []string{"50% bonus XP for social tasks", "20% bonus for work tasks"},
		StartingStats: Stats{Strength: 8, Intelligence: 10, Creativity: 10, Social: 15, Wisdom: 9, Luck: 8},
		Emoji:         "👥",
	},
	{
		Class:         ClassExplorer,
		Name:          "Explorer",
		Description:   "Adventurers seeking new experiences",
		Bonuses:       []string{"50% bonus XP for personal tasks", "20% bonus for social tasks"},
		StartingStats: Stats{Strength: 12, Intelligence: 9, Creativity: 11, Social: 10, Wisdom: 8, Luck: 10},
		Emoji:         "🌍",
	},
}

// Classes lists every playable class in creation-screen order.
func Classes() []ClassInfo {
	out := make([]ClassInfo, len(classInfos))
	for i, c := range classInfos {
		c.Bonuses = append([]string{}, c.Bonuses...)
		out[i] = c
	}
	return out
}

func StartingStats(class CharacterClass) Stats {
	for _, c := range classInfos {
		if c.Class == class {
			return c.StartingStats
		}
	}
	return Stats{}
}
