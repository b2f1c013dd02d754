package avatar

import (
	"time"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
)

// GetAvatarInput contains parameters for loading a player's avatar
type GetAvatarInput struct {
	PlayerID string
}

// GetAvatarOutput contains the avatar. Saved is false when the player never
// saved one and Config holds the defaults.
type GetAvatarOutput struct {
	Config    entities.AvatarConfig
	Revision  string
	UpdatedAt time.Time
	Saved     bool
}

// SaveAvatarInput contains parameters for saving an avatar
type SaveAvatarInput struct {
	PlayerID string
	Config   entities.AvatarConfig
}

// SaveAvatarOutput contains the avatar as stored
type SaveAvatarOutput struct {
	Config    entities.AvatarConfig
	Revision  string
	UpdatedAt time.Time
}

// RenderAvatarInput selects what to draw. Config wins over PlayerID.
type RenderAvatarInput struct {
	PlayerID    string
	Config      *entities.AvatarConfig
	Preview     *entities.Preview
	Size        int
	Interactive bool
}

// RenderAvatarOutput contains the SVG markup and what went into it
type RenderAvatarOutput struct {
	SVG    string
	Layers []string
	// Companion is nil when no companion is drawn
	Companion *avatar.LevelInfo
}

// PreviewItemInput contains parameters for a try-on render
type PreviewItemInput struct {
	PlayerID string
	Field    string
	Value    string
	Size     int
}

// PreviewItemOutput contains the try-on render
type PreviewItemOutput struct {
	SVG string
	// Locked reports whether the previewed style still has to be unlocked
	Locked bool
}

// ListAvatarItemsInput contains parameters for the lock snapshot
type ListAvatarItemsInput struct {
	PlayerID string
}

// ListAvatarItemsOutput maps category to the styles still locked for the player.
// Categories with nothing locked are omitted.
type ListAvatarItemsOutput struct {
	Locked map[avatar.Category][]string
}

// UnlockAvatarItemInput contains parameters for unlocking an item
type UnlockAvatarItemInput struct {
	PlayerID string
	Category avatar.Category
	ItemID   string
}

// UnlockAvatarItemOutput reports whether the item was already available
type UnlockAvatarItemOutput struct {
	AlreadyUnlocked bool
}

// RandomizeAvatarInput contains parameters for a random look. PlayerID is
// optional; with it the player's unlocked items join the pool and their
// companion is kept.
type RandomizeAvatarInput struct {
	PlayerID string
}

// RandomizeAvatarOutput contains the random configuration; nothing is saved
type RandomizeAvatarOutput struct {
	Config entities.AvatarConfig
}
