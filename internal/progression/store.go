package progression

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/rakhmonovquvonchbek/taskemon/internal/telemetry"
)

//go:generate go tool mockgen -destination=./mocks/recorder_mock.go -package=mocks . EventRecorder

// EventRecorder receives progression events. telemetry.MemoryRepository satisfies it.
type EventRecorder interface {
	RecordEvent(eventType telemetry.EventType, metadata telemetry.EventMetadata) error
}

type nopRecorder struct{}

func (nopRecorder) RecordEvent(telemetry.EventType, telemetry.EventMetadata) error { return nil }

// Store owns every player, quest and achievement. All methods are safe for concurrent
// use; a single mutex serialises them.
type Store struct {
	mu           sync.Mutex
	players      map[string]*Player
	quests       map[string]*Quest
	achievements map[string]*Achievement

	clock   Clock
	ids     IDGenerator
	unlocks UnlockLedger
	events  EventRecorder
	logger  *slog.Logger
}

type Option func(*Store)

func WithClock(c Clock) Option { return func(s *Store) { s.clock = c } }

func WithIDGenerator(g IDGenerator) Option { return func(s *Store) { s.ids = g } }

func WithUnlockLedger(l UnlockLedger) Option { return func(s *Store) { s.unlocks = l } }

func WithRecorder(r EventRecorder) Option { return func(s *Store) { s.events = r } }

func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

// NewStore returns an empty store. Call SeedQuests and SeedAchievements to load a catalog.
func NewStore(opts ...Option) *Store {
	s := &Store{
		players:      make(map[string]*Player),
		quests:       make(map[string]*Quest),
		achievements: make(map[string]*Achievement),
		clock:        RealClock{},
		ids:          UUIDGenerator{},
		unlocks:      GlobalUnlocks{},
		events:       nopRecorder{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) SeedQuests(ctx context.Context, quests []Quest) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range quests {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("%w: quest %q has no id", ErrInvalidCatalog, q.Title)
		}
		q = q.clone()
		if q.Prerequisites == nil {
			q.Prerequisites = []string{}
		}
		s.quests[q.ID] = &q
	}
	return nil
}

func (s *Store) SeedAchievements(ctx context.Context, achievements []Achievement) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range achievements {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("%w: achievement %q has no id", ErrInvalidCatalog, a.Title)
		}
		a = a.clone()
		s.achievements[a.ID] = &a
	}
	return nil
}

// NewPlayer carries character-creation input. Zero Stats means "use the class defaults".
type NewPlayer struct {
	Name   string         `json:"name"`
	Avatar string         `json:"avatar"`
	Class  CharacterClass `json:"characterClass"`
	Stats  *Stats         `json:"stats,omitempty"`
}

const defaultAvatar = "🧙"

func (s *Store) CreatePlayer(ctx context.Context, in NewPlayer) (Player, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Player{}, fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if !in.Class.IsValid() {
		return Player{}, fmt.Errorf("%w: unknown class %q", ErrInvalidPlayer, in.Class)
	}
	avatar := strings.TrimSpace(in.Avatar)
	if avatar == "" {
		avatar = defaultAvatar
	}
	stats := StartingStats(in.Class)
	if in.Stats != nil {
		stats = *in.Stats
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	p := &Player{
		ID:              s.ids.NewID(),
		Name:            name,
		Avatar:          avatar,
		Level:           1,
		XP:              0,
		XPToNextLevel:   XPForLevel(1),
		Class:           in.Class,
		Stats:           stats,
		Inventory:       []Item{},
		Achievements:    []string{},
		CurrentQuests:   []string{},
		CompletedQuests: []string{},
		CreatedAt:       now,
		LastActive:      now,
	}
	s.players[p.ID] = p

	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "class", p.Class)
	s.record(ctx, telemetry.EventPlayerCreated, telemetry.EventMetadata{
		"player_id": p.ID,
		"class":     string(p.Class),
	})
	return p.clone(), nil
}

func (s *Store) Player(ctx context.Context, id string) (Player, bool) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return Player{}, false
	}
	return p.clone(), true
}

// AwardXP adds amount to the player's cumulative XP and applies any level-up.
func (s *Store) AwardXP(ctx context.Context, playerID string, amount int) (LevelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return LevelResult{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	res := s.awardXPLocked(ctx, p, amount, &outcome{})
	p.LastActive = s.clock.Now()
	return res, nil
}

// outcome collects side effects of one public call.
type outcome struct {
	unlocked []string
}

func (s *Store) awardXPLocked(ctx context.Context, p *Player, amount int, out *outcome) LevelResult {
	oldLevel := p.Level
	p.XP = addXP(p.XP, amount)
	s.record(ctx, telemetry.EventXPAwarded, telemetry.EventMetadata{
		"player_id": p.ID,
		"amount":    amount,
		"total":     p.XP,
	})

	newLevel := LevelFromXP(p.XP)
	leveledUp := newLevel > oldLevel
	if leveledUp {
		p.Level = newLevel
		s.levelUpLocked(ctx, p, oldLevel, newLevel, out)
	}

	p.XPToNextLevel = XPToNextLevel(newLevel, p.XP)
	return LevelResult{LeveledUp: leveledUp, NewLevel: newLevel}
}

func (s *Store) levelUpLocked(ctx context.Context, p *Player, from, to int, out *outcome) {
	s.logger.InfoContext(ctx, "level up", "player_id", p.ID, "from", from, "to", to)
	s.record(ctx, telemetry.EventLevelUp, telemetry.EventMetadata{
		"player_id": p.ID,
		"from":      from,
		"to":        to,
	})

	p.Stats.Apply(levelUpBonus)

	for _, m := range levelMilestones {
		if to >= m {
			s.unlockLocked(ctx, p, fmt.Sprintf("level_%d", m), out)
		}
	}
}

// CompletionResult describes what CompleteQuest paid out. Completed is false when the
// call was a no-op.
type CompletionResult struct {
	Completed            bool     `json:"completed"`
	XPAwarded            int      `json:"xpAwarded"`
	Multiplier           float64  `json:"multiplier"`
	LeveledUp            bool     `json:"leveledUp"`
	NewLevel             int      `json:"newLevel"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

// CompleteQuest pays out questID to playerID. Unknown ids and quests that are already
// completed are ignored. The quest does not have to be in the player's current list.
func (s *Store) CompleteQuest(ctx context.Context, playerID, questID string) CompletionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, okP := s.players[playerID]
	q, okQ := s.quests[questID]
	if !okP || !okQ {
		s.logger.DebugContext(ctx, "complete quest ignored", "player_id", playerID, "quest_id", questID)
		return CompletionResult{UnlockedAchievements: []string{}}
	}
	if q.IsCompleted || p.hasCompleted(questID) {
		s.logger.DebugContext(ctx, "quest already completed", "player_id", playerID, "quest_id", questID)
		return CompletionResult{NewLevel: p.Level, UnlockedAchievements: []string{}}
	}

	out := &outcome{}
	mult := ClassMultiplier(p.Class, q.Category)
	totalXP := int(math.Floor(float64(q.XPReward) * mult))
	lvl := s.awardXPLocked(ctx, p, totalXP, out)

	p.Stats.Apply(q.StatRewards)

	now := s.clock.Now()
	q.IsCompleted = true
	q.CompletedAt = &now
	p.CompletedQuests = append(p.CompletedQuests, questID)
	p.CurrentQuests = without(p.CurrentQuests, questID)
	p.LastActive = now

	s.checkAchievementsLocked(ctx, p, out)

	s.logger.InfoContext(ctx, "quest completed",
		"player_id", p.ID,
		"quest_id", q.ID,
		"xp", totalXP,
		"leveled_up", lvl.LeveledUp,
	)
	s.record(ctx, telemetry.EventQuestCompleted, telemetry.EventMetadata{
		"player_id": p.ID,
		"quest_id":  q.ID,
		"category":  string(q.Category),
		"xp":        totalXP,
	})

	return CompletionResult{
		Completed:            true,
		XPAwarded:            totalXP,
		Multiplier:           mult,
		LeveledUp:            lvl.LeveledUp,
		NewLevel:             lvl.NewLevel,
		UnlockedAchievements: append([]string{}, out.unlocked...),
	}
}

// CreateTaskFromData registers a new daily quest built from wizard output and assigns it
// to the player.
func (s *Store) CreateTaskFromData(ctx context.Context, playerID string, data TaskData) (Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return Quest{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	title := strings.TrimSpace(data.Title)
	if title == "" {
		return Quest{}, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}

	q := &Quest{
		ID:            s.ids.NewID(),
		Title:         title,
		Description:   strings.TrimSpace(data.Description),
		Category:      data.Category,
		Difficulty:    data.Difficulty,
		Type:          TypeDaily,
		XPReward:      data.FinalXP,
		StatRewards:   TaskStatRewards(data.Category, data.FinalXP),
		TimeEstimate:  EstimateMinutes(data.Difficulty),
		Prerequisites: []string{},
		Urgency:       string(data.Urgency),
		Bonuses:       append([]Bonus(nil), data.Bonuses...),
	}
	s.quests[q.ID] = q
	p.CurrentQuests = append(p.CurrentQuests, q.ID)
	p.LastActive = s.clock.Now()

	s.logger.InfoContext(ctx, "task created", "player_id", p.ID, "quest_id", q.ID, "xp", q.XPReward)
	s.record(ctx, telemetry.EventTaskCreated, telemetry.EventMetadata{
		"player_id": p.ID,
		"quest_id":  q.ID,
		"category":  string(q.Category),
		"xp":        q.XPReward,
	})
	return q.clone(), nil
}

// CheckAchievements unlocks every open achievement whose requirements the player meets
// and returns the ids unlocked, including any unlocked by the resulting level-ups.
// An unknown player unlocks nothing.
func (s *Store) CheckAchievements(ctx context.Context, playerID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return []string{}
	}
	out := &outcome{}
	s.checkAchievementsLocked(ctx, p, out)
	return append([]string{}, out.unlocked...)
}

func (s *Store) checkAchievementsLocked(ctx context.Context, p *Player, out *outcome) {
	for _, id := range s.achievementIDsLocked() {
		a := s.achievements[id]
		if AllMet(*p, a.Requirements) {
			s.unlockLocked(ctx, p, id, out)
		}
	}
}

func (s *Store) unlockLocked(ctx context.Context, p *Player, id string, out *outcome) {
	a, ok := s.achievements[id]
	if !ok || p.hasAchievement(id) || s.unlocks.Closed(a, p) {
		return
	}

	s.unlocks.Record(a, p, s.clock.Now())
	p.Achievements = append(p.Achievements, id)
	out.unlocked = append(out.unlocked, id)

	s.logger.InfoContext(ctx, "achievement unlocked", "player_id", p.ID, "achievement_id", id)
	s.record(ctx, telemetry.EventAchievementUnlocked, telemetry.EventMetadata{
		"player_id":      p.ID,
		"achievement_id": id,
	})

	s.awardXPLocked(ctx, p, a.Rewards.XP, out)
	p.Stats.Apply(a.Rewards.Stats)
}

// AvailableQuests lists quests the player could pick up: not completed, not already
// assigned, and with every prerequisite in the player's completed log.
func (s *Store) AvailableQuests(ctx context.Context, playerID string) []Quest {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return []Quest{}
	}
	return s.filterQuestsLocked(func(q *Quest) bool {
		if q.IsCompleted || contains(p.CurrentQuests, q.ID) {
			return false
		}
		for _, pre := range q.Prerequisites {
			if !p.hasCompleted(pre) {
				return false
			}
		}
		return true
	})
}

func (s *Store) QuestsByCategory(ctx context.Context, category QuestCategory) []Quest {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterQuestsLocked(func(q *Quest) bool { return q.Category == category })
}

func (s *Store) Quest(ctx context.Context, id string) (Quest, bool) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quests[id]
	if !ok {
		return Quest{}, false
	}
	return q.clone(), true
}

func (s *Store) Quests(ctx context.Context) []Quest {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterQuestsLocked(func(*Quest) bool { return true })
}

// UnlockedAchievements lists the achievements credited to this player. The shared
// IsUnlocked flag is not consulted.
func (s *Store) UnlockedAchievements(ctx context.Context, playerID string) []Achievement {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Achievement{}
	p, ok := s.players[playerID]
	if !ok {
		return out
	}
	for _, id := range s.achievementIDsLocked() {
		if p.hasAchievement(id) {
			out = append(out, s.achievements[id].clone())
		}
	}
	return out
}

func (s *Store) Achievements(ctx context.Context) []Achievement {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Achievement, 0, len(s.achievements))
	for _, id := range s.achievementIDsLocked() {
		out = append(out, s.achievements[id].clone())
	}
	return out
}

// stable ordering for callers and tests
func (s *Store) filterQuestsLocked(keep func(*Quest) bool) []Quest {
	out := []Quest{}
	for _, q := range s.quests {
		if keep(q) {
			out = append(out, q.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) achievementIDsLocked() []string {
	ids := make([]string, 0, len(s.achievements))
	for id := range s.achievements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) record(ctx context.Context, t telemetry.EventType, md telemetry.EventMetadata) {
	if err := s.events.RecordEvent(t, md); err != nil {
		s.logger.WarnContext(ctx, "record event failed", "type", t, "err", err)
	}
}
