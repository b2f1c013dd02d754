package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/orchestrators/companion"
)

// Wire documents carried inside google.protobuf.Struct payloads.

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type avatarResponse struct {
	Config    entities.AvatarConfig `json:"config"`
	Revision  string                `json:"revision,omitempty"`
	UpdatedAt string                `json:"updated_at,omitempty"`
	Saved     bool                  `json:"saved"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

type saveAvatarRequest struct {
	PlayerID string                `json:"player_id"`
	Config   entities.AvatarConfig `json:"config"`
}

type renderAvatarRequest struct {
	PlayerID    string                 `json:"player_id"`
	Config      *entities.AvatarConfig `json:"config"`
	Preview     *entities.Preview      `json:"preview"`
	Size        int                    `json:"size"`
	Interactive bool                   `json:"interactive"`
}

type renderAvatarResponse struct {
	SVG       string            `json:"svg"`
	Layers    []string          `json:"layers"`
	Companion *avatar.LevelInfo `json:"companion,omitempty"`
}

type previewItemRequest struct {
	PlayerID string `json:"player_id"`
	Field    string `json:"field"`
	Value    string `json:"value"`
	Size     int    `json:"size"`
}

type previewItemResponse struct {
	SVG    string `json:"svg"`
	Locked bool   `json:"locked"`
}

type listAvatarItemsResponse struct {
	Locked map[avatar.Category][]string `json:"locked"`
}

type unlockAvatarItemRequest struct {
	PlayerID string `json:"player_id"`
	Category string `json:"category"`
	ItemID   string `json:"item_id"`
}

type unlockAvatarItemResponse struct {
	AlreadyUnlocked bool `json:"already_unlocked"`
}

type configResponse struct {
	Config entities.AvatarConfig `json:"config"`
}

type companionView struct {
	Species string `json:"species"`
	avatar.LevelInfo
}

func toCompanionView(c *companion.Companion) *companionView {
	if c == nil {
		return nil
	}
	return &companionView{Species: c.Species, LevelInfo: c.Level}
}

type getCompanionResponse struct {
	Companion             *companionView     `json:"companion,omitempty"`
	InteractionsToday     []companion.Action `json:"interactions_today"`
	InteractionsRemaining int                `json:"interactions_remaining"`
}

type interactRequest struct {
	PlayerID string `json:"player_id"`
	Action   string `json:"action"`
}

type levelUpView struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Name string `json:"name"`
}

type interactResponse struct {
	Companion             *companionView `json:"companion"`
	Action                string         `json:"action"`
	XPAwarded             int            `json:"xp_awarded"`
	InteractionsRemaining int            `json:"interactions_remaining"`
	LevelUp               *levelUpView   `json:"levelup,omitempty"`
}

type listLevelsResponse struct {
	Levels []avatar.LevelTier `json:"levels"`
}
