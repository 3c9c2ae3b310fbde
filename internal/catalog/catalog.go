// Package catalog reads quest and achievement definitions from YAML files.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
)

// File is the on-disk layout.
type File struct {
	Quests       []QuestEntry       `yaml:"quests"`
	Achievements []AchievementEntry `yaml:"achievements"`
}

type QuestEntry struct {
	ID            string         `yaml:"id"`
	Title         string         `yaml:"title"`
	Description   string         `yaml:"description,omitempty"`
	Category      string         `yaml:"category"`
	Difficulty    string         `yaml:"difficulty,omitempty"`
	Type          string         `yaml:"type,omitempty"`
	XPReward      int            `yaml:"xp_reward"`
	StatRewards   map[string]int `yaml:"stat_rewards,omitempty"`
	TimeEstimate  int            `yaml:"time_estimate,omitempty"`
	Prerequisites []string       `yaml:"prerequisites,omitempty"`
}

type AchievementEntry struct {
	ID           string                        `yaml:"id"`
	Title        string                        `yaml:"title"`
	Description  string                        `yaml:"description,omitempty"`
	Icon         string                        `yaml:"icon,omitempty"`
	Category     string                        `yaml:"category,omitempty"`
	Requirements []progression.RequirementSpec `yaml:"requirements"`
	Rewards      RewardsEntry                  `yaml:"rewards"`
	Hidden       bool                          `yaml:"hidden,omitempty"`
	Rarity       string                        `yaml:"rarity,omitempty"`
}

type RewardsEntry struct {
	XP    int            `yaml:"xp"`
	Items []string       `yaml:"items,omitempty"`
	Stats map[string]int `yaml:"stats,omitempty"`
}

// Catalog is a decoded, validated file.
type Catalog struct {
	Quests       []progression.Quest
	Achievements []progression.Achievement
}

// Default is the built-in starter catalog.
func Default() Catalog {
	return Catalog{
		Quests:       progression.DefaultQuests(),
		Achievements: progression.DefaultAchievements(),
	}
}

func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	c, err := Parse(b)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document. Unknown fields are rejected.
func Parse(b []byte) (Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", progression.ErrInvalidCatalog, err)
	}
	return f.Catalog()
}

func (f File) Catalog() (Catalog, error) {
	var c Catalog
	seen := map[string]bool{}
	for i, e := range f.Quests {
		q, err := e.quest()
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: quests[%d]: %v", progression.ErrInvalidCatalog, i, err)
		}
		if seen[q.ID] {
			return Catalog{}, fmt.Errorf("%w: duplicate quest id %q", progression.ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = true
		c.Quests = append(c.Quests, q)
	}

	seen = map[string]bool{}
	for i, e := range f.Achievements {
		a, err := e.achievement()
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: achievements[%d]: %v", progression.ErrInvalidCatalog, i, err)
		}
		if seen[a.ID] {
			return Catalog{}, fmt.Errorf("%w: duplicate achievement id %q", progression.ErrInvalidCatalog, a.ID)
		}
		seen[a.ID] = true
		c.Achievements = append(c.Achievements, a)
	}
	return c, nil
}

func (e QuestEntry) quest() (progression.Quest, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return progression.Quest{}, fmt.Errorf("id is required")
	}
	cat := progression.QuestCategory(e.Category)
	if !cat.IsValid() {
		return progression.Quest{}, fmt.Errorf("%s: unknown category %q", id, e.Category)
	}
	stats, err := parseStats(e.StatRewards)
	if err != nil {
		return progression.Quest{}, fmt.Errorf("%s: %w", id, err)
	}
	typ := progression.QuestType(e.Type)
	if typ == "" {
		typ = progression.TypeSide
	}
	return progression.Quest{
		ID:            id,
		Title:         e.Title,
		Description:   e.Description,
		Category:      cat,
		Difficulty:    progression.QuestDifficulty(e.Difficulty),
		Type:          typ,
		XPReward:      e.XPReward,
		StatRewards:   stats,
		TimeEstimate:  e.TimeEstimate,
		Prerequisites: append([]string{}, e.Prerequisites...),
	}, nil
}

func (e AchievementEntry) achievement() (progression.Achievement, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return progression.Achievement{}, fmt.Errorf("id is required")
	}
	reqs, err := progression.ParseRequirements(e.Requirements)
	if err != nil {
		return progression.Achievement{}, fmt.Errorf("%s: %w", id, err)
	}
	stats, err := parseStats(e.Rewards.Stats)
	if err != nil {
		return progression.Achievement{}, fmt.Errorf("%s: rewards: %w", id, err)
	}
	rarity := progression.Rarity(e.Rarity)
	if rarity == "" {
		rarity = progression.RarityCommon
	}
	return progression.Achievement{
		ID:           id,
		Title:        e.Title,
		Description:  e.Description,
		Icon:         e.Icon,
		Category:     e.Category,
		Requirements: reqs,
		Rewards: progression.Rewards{
			XP:    e.Rewards.XP,
			Items: append([]string{}, e.Rewards.Items...),
			Stats: stats,
		},
		IsHidden: e.Hidden,
		Rarity:   rarity,
	}, nil
}

func parseStats(m map[string]int) (progression.StatRewards, error) {
	out := progression.StatRewards{}
	for name, v := range m {
		st, err := progression.ParseStat(name)
		if err != nil {
			return nil, err
		}
		out[st] = v
	}
	return out, nil
}

// Seed loads the catalog into s.
func (c Catalog) Seed(ctx context.Context, s *progression.Store) error {
	if err := s.SeedQuests(ctx, c.Quests); err != nil {
		return err
	}
	return s.SeedAchievements(ctx, c.Achievements)
}

// File converts c back to its on-disk form.
func (c Catalog) File() File {
	var f File
	for _, q := range c.Quests {
		f.Quests = append(f.Quests, QuestEntry{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Category:      string(q.Category),
			Difficulty:    string(q.Difficulty),
			Type:          string(q.Type),
			XPReward:      q.XPReward,
			StatRewards:   statMap(q.StatRewards),
			TimeEstimate:  q.TimeEstimate,
			Prerequisites: q.Prerequisites,
		})
	}
	for _, a := range c.Achievements {
		f.Achievements = append(f.Achievements, AchievementEntry{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Icon:         a.Icon,
			Category:     a.Category,
			Requirements: a.Requirements.Specs(),
			Rewards: RewardsEntry{
				XP:    a.Rewards.XP,
				Items: a.Rewards.Items,
				Stats: statMap(a.Rewards.Stats),
			},
			Hidden: a.IsHidden,
			Rarity: string(a.Rarity),
		})
	}
	return f
}

// Encode writes c as YAML with quests and achievements sorted by id.
func (c Catalog) Encode() ([]byte, error) {
	f := c.File()
	sort.Slice(f.Quests, func(i, j int) bool { return f.Quests[i].ID < f.Quests[j].ID })
	sort.Slice(f.Achievements, func(i, j int) bool { return f.Achievements[i].ID < f.Achievements[j].ID })

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func statMap(r progression.StatRewards) map[string]int {
	if len(r) == 0 {
		return nil
	}
	out := make(map[string]int, len(r))
	for k, v := range r {
		out[string(k)] = v
	}
	return out
}
