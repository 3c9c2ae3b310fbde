package progression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 150, XPForLevel(2))
	assert.Equal(t, 225, XPForLevel(3))
	assert.Equal(t, 337, XPForLevel(4))
	assert.Equal(t, 3844, XPForLevel(10))
}

func TestLevelFromXP_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{xp: -5, want: 1},
		{xp: 0, want: 1},
		{xp: 99, want: 1},
		{xp: 100, want: 2},
		{xp: 249, want: 2},
		{xp: 250, want: 3},
		{xp: 474, want: 3},
		{xp: 475, want: 4},
		{xp: 812, want: 5},
		{xp: 7486, want: 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFromXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestXPForLevel_SaturatesLargeLevels(t *testing.T) {
	assert.Equal(t, math.MaxInt, XPForLevel(100))
	assert.Equal(t, math.MaxInt, XPForLevel(1000))
	assert.Positive(t, XPForLevel(96))
}

func TestLevelFromXP_HugeTotals(t *testing.T) {
	assert.Equal(t, 90, LevelFromXP(1<<60))
	assert.Equal(t, 94, LevelFromXP(7e18))
	assert.Equal(t, 95, LevelFromXP(math.MaxInt))
	assert.Equal(t, 1, LevelFromXP(math.MinInt))
}

func TestCurve_CumulativeSaturates(t *testing.T) {
	rows := Curve(100)
	assert.Len(t, rows, 100)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i].Cumulative, rows[i-1].Cumulative, "level %d", rows[i].Level)
	}
	assert.Equal(t, math.MaxInt, rows[99].Cumulative)
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 275, XPToNextLevel(2, 100))
	assert.Equal(t, 215, XPToNextLevel(2, 160))
}

func TestCurve_CumulativeMatchesLevelFromXP(t *testing.T) {
	rows := Curve(8)
	assert.Len(t, rows, 8)
	assert.Equal(t, CurveRow{Level: 1, XPForLevel: 100, Cumulative: 0}, rows[0])
	assert.Equal(t, CurveRow{Level: 3, XPForLevel: 225, Cumulative: 250}, rows[2])

	for _, r := range rows {
		assert.Equal(t, r.Level, LevelFromXP(r.Cumulative), "level %d threshold", r.Level)
		if r.Cumulative > 0 {
			assert.Equal(t, r.Level-1, LevelFromXP(r.Cumulative-1), "just below level %d", r.Level)
		}
	}
}

func TestProgress_ClampsAndComputesPercent(t *testing.T) {
	fresh := Progress(Player{Level: 1, XP: 0, XPToNextLevel: 100})
	assert.Equal(t, 150, fresh.LevelTotal)
	assert.Equal(t, 0.0, fresh.Percent)

	mid := Progress(Player{Level: 2, XP: 160, XPToNextLevel: 165})
	assert.Equal(t, 225, mid.LevelTotal)
	assert.InDelta(t, 44.44, mid.Percent, 0.01)
}
