package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
)

const sample = `
quests:
  - id: morning_run
    title: Morning Run
    category: health
    difficulty: medium
    type: daily
    xp_reward: 40
    stat_rewards:
      strength: 3
    time_estimate: 30
  - id: marathon
    title: Marathon
    category: health
    difficulty: epic
    xp_reward: 500
    prerequisites: [morning_run]
achievements:
  - id: runner
    title: Runner
    icon: "🏃"
    requirements:
      - type: quest_complete
        value: 1
      - type: stat_reach
        stat: strength
        value: 18
    rewards:
      xp: 25
      stats:
        luck: 2
    rarity: rare
  - id: streaky
    title: Streaky
    requirements:
      - type: streak_reach
        value: 7
    rewards:
      xp: 10
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, c.Quests, 2)
	run := c.Quests[0]
	assert.Equal(t, "morning_run", run.ID)
	assert.Equal(t, progression.CategoryHealth, run.Category)
	assert.Equal(t, progression.TypeDaily, run.Type)
	assert.Equal(t, progression.StatRewards{progression.StatStrength: 3}, run.StatRewards)
	assert.Equal(t, progression.TypeSide, c.Quests[1].Type)
	assert.Equal(t, []string{"morning_run"}, c.Quests[1].Prerequisites)

	require.Len(t, c.Achievements, 2)
	runner := c.Achievements[0]
	assert.Equal(t, progression.Requirements{
		progression.QuestCompleteRequirement{Count: 1},
		progression.StatReachRequirement{Stat: progression.StatStrength, Value: 18},
	}, runner.Requirements)
	assert.Equal(t, progression.RarityRare, runner.Rarity)
	assert.Equal(t, progression.StatRewards{progression.StatLuck: 2}, runner.Rewards.Stats)

	assert.Equal(t, progression.RarityCommon, c.Achievements[1].Rarity)
	assert.Equal(t, progression.Requirements{
		progression.UnsupportedRequirement{Type: progression.ReqStreakReach, Value: 7},
	}, c.Achievements[1].Requirements)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown category":  "quests:\n  - id: a\n    category: chores\n",
		"missing id":        "quests:\n  - title: nameless\n    category: work\n",
		"duplicate quest":   "quests:\n  - id: a\n    category: work\n  - id: a\n    category: work\n",
		"unknown stat":      "achievements:\n  - id: a\n    requirements:\n      - type: stat_reach\n        stat: charisma\n        value: 1\n",
		"unknown reward":    "achievements:\n  - id: a\n    rewards:\n      stats:\n        mana: 1\n",
		"unknown field":     "quests:\n  - id: a\n    category: work\n    gold: 5\n",
		"malformed":         "quests: [\n",
		"duplicate achieve": "achievements:\n  - id: a\n  - id: a\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, progression.ErrInvalidCatalog)
		})
	}
}

func TestLoadAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	ctx := context.Background()
	s := progression.NewStore()
	require.NoError(t, c.Seed(ctx, s))

	p, err := s.CreatePlayer(ctx, progression.NewPlayer{Name: "Ada", Class: progression.ClassAthlete})
	require.NoError(t, err)

	available := s.AvailableQuests(ctx, p.ID)
	require.Len(t, available, 1)
	assert.Equal(t, "morning_run", available[0].ID)

	res := s.CompleteQuest(ctx, p.ID, "morning_run")
	assert.Equal(t, 60, res.XPAwarded)
	// athlete strength 15 plus 3 meets the stat_reach of 18
	assert.Equal(t, []string{"runner"}, res.UnlockedAchievements)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTripsDefaultCatalog(t *testing.T) {
	b, err := Default().Encode()
	require.NoError(t, err)
	assert.Contains(t, string(b), "id: daily_water")

	back, err := Parse(b)
	require.NoError(t, err)
	assert.Len(t, back.Quests, 3)
	assert.Len(t, back.Achievements, 2)
	assert.Equal(t, "first_steps", back.Achievements[0].ID)
	assert.Equal(t, progression.Requirements{progression.QuestCompleteRequirement{Count: 1}}, back.Achievements[0].Requirements)
}
