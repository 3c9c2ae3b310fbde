package progression

import (
	"encoding/json"
	"fmt"
)

type RequirementKind string

const (
	ReqQuestComplete RequirementKind = "quest_complete"
	ReqLevelReach    RequirementKind = "level_reach"
	ReqStatReach     RequirementKind = "stat_reach"
	ReqXPEarn        RequirementKind = "xp_earn"
	ReqStreakReach   RequirementKind = "streak_reach"
)

// Requirement is one condition of an achievement. The set of implementations is closed
// to this package.
type Requirement interface {
	Kind() RequirementKind
	Spec() RequirementSpec
	isRequirement()
}

// QuestCompleteRequirement holds when the player has completed at least Count quests.
type QuestCompleteRequirement struct{ Count int }

// LevelReachRequirement holds when the player is at least at Level.
type LevelReachRequirement struct{ Level int }

// StatReachRequirement holds when Stat is at least Value.
type StatReachRequirement struct {
	Stat  Stat
	Value int
}

// XPEarnRequirement holds when the player's cumulative XP is at least XP.
type XPEarnRequirement struct{ XP int }

// UnsupportedRequirement keeps kinds the engine cannot evaluate, such as streaks.
// It never holds.
type UnsupportedRequirement struct {
	Type  RequirementKind
	Value int
}

func (QuestCompleteRequirement) Kind() RequirementKind { return ReqQuestComplete }
func (LevelReachRequirement) Kind() RequirementKind    { return ReqLevelReach }
func (StatReachRequirement) Kind() RequirementKind     { return ReqStatReach }
func (XPEarnRequirement) Kind() RequirementKind        { return ReqXPEarn }
func (r UnsupportedRequirement) Kind() RequirementKind { return r.Type }

func (r QuestCompleteRequirement) Spec() RequirementSpec {
	return RequirementSpec{Type: ReqQuestComplete, Value: r.Count}
}

func (r LevelReachRequirement) Spec() RequirementSpec {
	return RequirementSpec{Type: ReqLevelReach, Value: r.Level}
}

func (r StatReachRequirement) Spec() RequirementSpec {
	return RequirementSpec{Type: ReqStatReach, Value: r.Value, Stat: r.Stat}
}

func (r XPEarnRequirement) Spec() RequirementSpec {
	return RequirementSpec{Type: ReqXPEarn, Value: r.XP}
}

func (r UnsupportedRequirement) Spec() RequirementSpec {
	return RequirementSpec{Type: r.Type, Value: r.Value}
}

func (QuestCompleteRequirement) isRequirement() {}
func (LevelReachRequirement) isRequirement()    {}
func (StatReachRequirement) isRequirement()     {}
func (XPEarnRequirement) isRequirement()        {}
func (UnsupportedRequirement) isRequirement()   {}

// Met reports whether req holds for p.
func Met(p Player, req Requirement) bool {
	switch r := req.(type) {
	case QuestCompleteRequirement:
		return len(p.CompletedQuests) >= r.Count
	case LevelReachRequirement:
		return p.Level >= r.Level
	case StatReachRequirement:
		v, ok := p.Stats.Get(r.Stat)
		return ok && v >= r.Value
	case XPEarnRequirement:
		return p.XP >= r.XP
	case UnsupportedRequirement:
		return false
	default:
		return false
	}
}

// AllMet is the conjunction of reqs. An empty list is satisfied.
func AllMet(p Player, reqs []Requirement) bool {
	for _, r := range reqs {
		if !Met(p, r) {
			return false
		}
	}
	return true
}

// RequirementSpec is the wire and file form of a Requirement.
type RequirementSpec struct {
	Type  RequirementKind `json:"type" yaml:"type"`
	Value int             `json:"value" yaml:"value"`
	Stat  Stat            `json:"stat,omitempty" yaml:"stat,omitempty"`
}

// ParseRequirement converts the wire form into a Requirement. Unknown kinds decode to
// UnsupportedRequirement; a stat_reach with an unknown stat is an error.
func ParseRequirement(s RequirementSpec) (Requirement, error) {
	switch s.Type {
	case ReqQuestComplete:
		return QuestCompleteRequirement{Count: s.Value}, nil
	case ReqLevelReach:
		return LevelReachRequirement{Level: s.Value}, nil
	case ReqStatReach:
		st, err := ParseStat(string(s.Stat))
		if err != nil {
			return nil, fmt.Errorf("stat_reach: %w", err)
		}
		return StatReachRequirement{Stat: st, Value: s.Value}, nil
	case ReqXPEarn:
		return XPEarnRequirement{XP: s.Value}, nil
	default:
		return UnsupportedRequirement{Type: s.Type, Value: s.Value}, nil
	}
}

// Requirements serialises as a list of RequirementSpec.
type Requirements []Requirement

func (rs Requirements) Specs() []RequirementSpec {
	out := make([]RequirementSpec, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Spec())
	}
	return out
}

func (rs Requirements) MarshalJSON() ([]byte, error) {
	return json.Marshal(rs.Specs())
}

func (rs *Requirements) UnmarshalJSON(b []byte) error {
	var specs []RequirementSpec
	if err := json.Unmarshal(b, &specs); err != nil {
		return err
	}
	out, err := ParseRequirements(specs)
	if err != nil {
		return err
	}
	*rs = out
	return nil
}

func ParseRequirements(specs []RequirementSpec) (Requirements, error) {
	out := make(Requirements, 0, len(specs))
	for i, s := range specs {
		r, err := ParseRequirement(s)
		if err != nil {
			return nil, fmt.Errorf("requirement %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
