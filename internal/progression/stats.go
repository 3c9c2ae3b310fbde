package progression

import (
	"fmt"
	"sort"
)

// Stat names one of the six progression counters.
type Stat string

const (
	StatStrength     Stat = "strength"
	StatIntelligence Stat = "intelligence"
	StatCreativity   Stat = "creativity"
	StatSocial       Stat = "social"
	StatWisdom       Stat = "wisdom"
	StatLuck         Stat = "luck"
)

// AllStats lists the stats in display order.
var AllStats = []Stat{StatStrength, StatIntelligence, StatCreativity, StatSocial, StatWisdom, StatLuck}

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatIntelligence, StatCreativity, StatSocial, StatWisdom, StatLuck:
		return true
	default:
		return false
	}
}

func ParseStat(name string) (Stat, error) {
	s := Stat(name)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown stat %q", name)
	}
	return s, nil
}

type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Creativity   int `json:"creativity" yaml:"creativity"`
	Social       int `json:"social" yaml:"social"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Luck         int `json:"luck" yaml:"luck"`
}

// Get returns the value of stat, or false for a name outside the enumeration.
func (s Stats) Get(stat Stat) (int, bool) {
	switch stat {
	case StatStrength:
		return s.Strength, true
	case StatIntelligence:
		return s.Intelligence, true
	case StatCreativity:
		return s.Creativity, true
	case StatSocial:
		return s.Social, true
	case StatWisdom:
		return s.Wisdom, true
	case StatLuck:
		return s.Luck, true
	default:
		return 0, false
	}
}

// Add increments stat by n. Unknown stats are ignored and report false.
func (s *Stats) Add(stat Stat, n int) bool {
	switch stat {
	case StatStrength:
		s.Strength += n
	case StatIntelligence:
		s.Intelligence += n
	case StatCreativity:
		s.Creativity += n
	case StatSocial:
		s.Social += n
	case StatWisdom:
		s.Wisdom += n
	case StatLuck:
		s.Luck += n
	default:
		return false
	}
	return true
}

// Apply adds every entry of r. Zero amounts are skipped.
func (s *Stats) Apply(r StatRewards) {
	for _, stat := range r.sortedKeys() {
		if n := r[stat]; n != 0 {
			s.Add(stat, n)
		}
	}
}

// StatRewards is a partial mapping from stat to bonus amount.
type StatRewards map[Stat]int

func (r StatRewards) clone() StatRewards {
	if r == nil {
		return nil
	}
	out := make(StatRewards, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r StatRewards) sortedKeys() []Stat {
	keys := make([]Stat, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// levelUpBonus is granted once per level-up call.
var levelUpBonus = StatRewards{
	StatStrength:     1,
	StatIntelligence: 1,
	StatCreativity:   1,
	StatSocial:       1,
	StatWisdom:       1,
	StatLuck:         1,
}
