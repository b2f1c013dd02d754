package companion

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
)

// Action is something a player can do with their companion.
type Action string

// Companion actions
const (
	ActionFeed Action = "feed"
	ActionPet  Action = "pet"
	ActionPlay Action = "play"
)

// actionXP is the companion XP each action awards.
var actionXP = map[Action]int{
	ActionFeed: 2,
	ActionPet:  1,
	ActionPlay: 3,
}

// MaxInteractionsPerDay caps feed/pet/play per player per calendar day.
const MaxInteractionsPerDay = 3

// Actions lists the valid actions.
func Actions() []Action {
	return []Action{ActionFeed, ActionPet, ActionPlay}
}

// XPFor returns the XP an action awards, 0 for unknown actions.
func XPFor(a Action) int {
	return actionXP[a]
}

// Companion is a player's equipped companion.
type Companion struct {
	PlayerID string
	Species  string
	Level    avatar.LevelInfo
}

// GetID returns an id unique per player and species
func (c *Companion) GetID() string {
	return c.PlayerID + ":" + c.Species
}

// GetType returns the entity type for rpg-toolkit
func (c *Companion) GetType() string {
	return "companion"
}

var _ core.Entity = (*Companion)(nil)

// GetCompanionInput contains parameters for loading a companion
type GetCompanionInput struct {
	PlayerID string
}

// GetCompanionOutput contains the companion and today's interaction budget.
// Companion is nil when no companion is equipped.
type GetCompanionOutput struct {
	Companion             *Companion
	InteractionsToday     []Action
	InteractionsRemaining int
}

// InteractWithCompanionInput contains parameters for an interaction
type InteractWithCompanionInput struct {
	PlayerID string
	Action   Action
}

// LevelUp describes a level change caused by an interaction
type LevelUp struct {
	From int
	To   int
	Name string
}

// InteractWithCompanionOutput contains the result of an interaction
type InteractWithCompanionOutput struct {
	Companion             *Companion
	Action                Action
	XPAwarded             int
	InteractionsRemaining int
	// LevelUp is nil unless the companion gained a level
	LevelUp *LevelUp
}

// ListCompanionLevelsInput is empty; the ladder is the same for everyone
type ListCompanionLevelsInput struct{}

// ListCompanionLevelsOutput contains the level ladder
type ListCompanionLevelsOutput struct {
	Levels []avatar.LevelTier
}
