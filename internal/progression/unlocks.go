package progression

import "time"

// UnlockLedger decides whether an achievement is still open to a player during an
// achievement scan, and records an unlock once it happens.
type UnlockLedger interface {
	Closed(a *Achievement, p *Player) bool
	Record(a *Achievement, p *Player, at time.Time)
}

// GlobalUnlocks closes an achievement for everyone once any player unlocks it.
// The first unlock stamps Achievement.IsUnlocked and UnlockedAt.
type GlobalUnlocks struct{}

func (GlobalUnlocks) Closed(a *Achievement, _ *Player) bool { return a.IsUnlocked }

func (GlobalUnlocks) Record(a *Achievement, _ *Player, at time.Time) {
	a.IsUnlocked = true
	t := at
	a.UnlockedAt = &t
}

// PlayerUnlocks only consults the player's own list, so every player can earn every
// achievement. The shared flag is still raised for display.
type PlayerUnlocks struct{}

func (PlayerUnlocks) Closed(*Achievement, *Player) bool { return false }

func (PlayerUnlocks) Record(a *Achievement, _ *Player, at time.Time) {
	if !a.IsUnlocked {
		a.IsUnlocked = true
		t := at
		a.UnlockedAt = &t
	}
}

// UnlockMode names a ledger in configuration.
type UnlockMode string

const (
	UnlockModeGlobal    UnlockMode = "global"
	UnlockModePerPlayer UnlockMode = "per_player"
)

func LedgerFor(mode UnlockMode) UnlockLedger {
	if mode == UnlockModePerPlayer {
		return PlayerUnlocks{}
	}
	return GlobalUnlocks{}
}
