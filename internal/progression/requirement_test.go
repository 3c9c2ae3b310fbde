package progression

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMet(t *testing.T) {
	p := Player{
		Level:           3,
		XP:              300,
		Stats:           Stats{Wisdom: 12},
		CompletedQuests: []string{"a", "b"},
	}

	assert.True(t, Met(p, QuestCompleteRequirement{Count: 2}))
	assert.False(t, Met(p, QuestCompleteRequirement{Count: 3}))
	assert.True(t, Met(p, LevelReachRequirement{Level: 3}))
	assert.False(t, Met(p, LevelReachRequirement{Level: 4}))
	assert.True(t, Met(p, StatReachRequirement{Stat: StatWisdom, Value: 12}))
	assert.False(t, Met(p, StatReachRequirement{Stat: StatLuck, Value: 1}))
	assert.False(t, Met(p, StatReachRequirement{Stat: "charisma", Value: 0}))
	assert.True(t, Met(p, XPEarnRequirement{XP: 300}))
	assert.False(t, Met(p, UnsupportedRequirement{Type: ReqStreakReach, Value: 0}))
}

func TestAllMet_EmptyIsSatisfied(t *testing.T) {
	assert.True(t, AllMet(Player{}, nil))
	assert.False(t, AllMet(Player{Level: 5}, []Requirement{LevelReachRequirement{Level: 5}, XPEarnRequirement{XP: 1}}))
}

func TestParseRequirement(t *testing.T) {
	r, err := ParseRequirement(RequirementSpec{Type: ReqStatReach, Stat: StatSocial, Value: 20})
	require.NoError(t, err)
	assert.Equal(t, StatReachRequirement{Stat: StatSocial, Value: 20}, r)

	r, err = ParseRequirement(RequirementSpec{Type: ReqStreakReach, Value: 7})
	require.NoError(t, err)
	assert.Equal(t, UnsupportedRequirement{Type: ReqStreakReach, Value: 7}, r)

	_, err = ParseRequirement(RequirementSpec{Type: ReqStatReach, Stat: "charisma", Value: 1})
	assert.Error(t, err)
}

func TestRequirements_JSON(t *testing.T) {
	raw := `[{"type":"quest_complete","value":1},{"type":"stat_reach","value":20,"stat":"luck"},{"type":"streak_reach","value":7}]`

	var rs Requirements
	require.NoError(t, json.Unmarshal([]byte(raw), &rs))
	assert.Equal(t, Requirements{
		QuestCompleteRequirement{Count: 1},
		StatReachRequirement{Stat: StatLuck, Value: 20},
		UnsupportedRequirement{Type: ReqStreakReach, Value: 7},
	}, rs)

	out, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
