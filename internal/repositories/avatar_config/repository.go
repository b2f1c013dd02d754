// Package avatarconfig stores each player's saved avatar configuration.
package avatarconfig

import (
	"context"
	"time"

	"github.com/KirkDiggler/chore-quest/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=avatarconfigmock github.com/KirkDiggler/chore-quest/internal/repositories/avatar_config Repository

// StoredAvatar is a configuration plus the bookkeeping written on every save.
type StoredAvatar struct {
	PlayerID  string                `json:"player_id"`
	Config    entities.AvatarConfig `json:"config"`
	Revision  string                `json:"revision"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// GetInput contains parameters for loading a saved avatar
type GetInput struct {
	PlayerID string
}

// GetOutput contains the saved avatar
type GetOutput struct {
	Avatar *StoredAvatar
}

// SaveInput contains parameters for saving an avatar
type SaveInput struct {
	PlayerID string
	Config   entities.AvatarConfig
}

// SaveOutput contains the avatar as written, with its new revision
type SaveOutput struct {
	Avatar *StoredAvatar
}

// AddCompanionXPInput contains parameters for awarding companion XP
type AddCompanionXPInput struct {
	PlayerID string
	Amount   int
}

// AddCompanionXPOutput contains the XP before and after the award
type AddCompanionXPOutput struct {
	Avatar     *StoredAvatar
	PreviousXP int
}

// Repository defines the interface for avatar configuration storage
type Repository interface {
	// Get returns NotFound when the player never saved an avatar
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored configuration and assigns a new revision
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// AddCompanionXP atomically adds to the stored companion XP. Concurrent
	// awards never overwrite each other.
	AddCompanionXP(ctx context.Context, input AddCompanionXPInput) (*AddCompanionXPOutput, error)
}
