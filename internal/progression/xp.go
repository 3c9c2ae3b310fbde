package progression

import "math"

const (
	// BaseLevelXP is the XP needed to go from level 1 to level 2.
	BaseLevelXP = 100.0

	// LevelGrowth scales each successive level's requirement.
	LevelGrowth = 1.5
)

// XPForLevel returns floor(100 * 1.5^(level-1)), saturating at math.MaxInt.
func XPForLevel(level int) int {
	v := math.Floor(BaseLevelXP * math.Pow(LevelGrowth, float64(level-1)))
	if v >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(v)
}

// LevelFromXP walks the cumulative curve: level L is reached once
// XPForLevel(1)+...+XPForLevel(L-1) <= totalXP. The result is never below 1.
func LevelFromXP(totalXP int) int {
	level := 1
	acc := 0
	// acc <= totalXP holds inside the loop, so totalXP-acc cannot overflow.
	for next := XPForLevel(level); next <= totalXP-acc; next = XPForLevel(level) {
		acc += next
		level++
	}
	return level
}

// addXP adds amount to xp, clamped to [0, math.MaxInt].
func addXP(xp, amount int) int {
	switch {
	case amount > 0 && xp > math.MaxInt-amount:
		return math.MaxInt
	case xp+amount < 0:
		return 0
	}
	return xp + amount
}

// XPToNextLevel is the remaining XP before level+1 given xp banked past XPForLevel(level).
func XPToNextLevel(level, xp int) int {
	return XPForLevel(level+1) - (xp - XPForLevel(level))
}

// LevelProgress is the data a progress bar needs.
type LevelProgress struct {
	Level         int     `json:"level"`
	XP            int     `json:"xp"`
	XPToNextLevel int     `json:"xpToNextLevel"`
	LevelTotal    int     `json:"levelTotal"`
	Percent       float64 `json:"percent"`
}

// Progress mirrors the dashboard's progress-bar arithmetic, clamped to [0, 100].
func Progress(p Player) LevelProgress {
	total := XPForLevel(p.Level + 1)
	pct := 0.0
	if total > 0 {
		pct = float64(p.XPToNextLevel-(total-p.XP)) / float64(total) * 100
	}
	pct = math.Max(0, math.Min(100, pct))
	return LevelProgress{
		Level:         p.Level,
		XP:            p.XP,
		XPToNextLevel: p.XPToNextLevel,
		LevelTotal:    total,
		Percent:       pct,
	}
}

// CurveRow is one line of the XP threshold table.
type CurveRow struct {
	Level      int `json:"level"`
	XPForLevel int `json:"xpForLevel"`
	// Cumulative is the total XP at which this level is reached.
	Cumulative int `json:"cumulative"`
}

// Curve returns the thresholds for levels 1..n.
func Curve(n int) []CurveRow {
	if n < 1 {
		n = 1
	}
	rows := make([]CurveRow, 0, n)
	acc := 0
	for level := 1; level <= n; level++ {
		rows = append(rows, CurveRow{Level: level, XPForLevel: XPForLevel(level), Cumulative: acc})
		acc = addXP(acc, XPForLevel(level))
	}
	return rows
}
