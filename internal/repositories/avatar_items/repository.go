// Package avataritems stores which cosmetic items each player has unlocked.
package avataritems

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=avataritemsmock github.com/KirkDiggler/chore-quest/internal/repositories/avatar_items Repository

// ListUnlockedInput contains parameters for listing unlocked items
type ListUnlockedInput struct {
	PlayerID string
}

// ListUnlockedOutput maps category to the set of unlocked item ids
type ListUnlockedOutput struct {
	Unlocked map[string]map[string]bool
}

// UnlockInput contains parameters for unlocking an item
type UnlockInput struct {
	PlayerID string
	Category string
	ItemID   string
}

// UnlockOutput reports whether the item was already unlocked
type UnlockOutput struct {
	AlreadyUnlocked bool
}

// Repository defines the interface for unlocked item storage
type Repository interface {
	ListUnlocked(ctx context.Context, input ListUnlockedInput) (*ListUnlockedOutput, error)

	// Unlock is idempotent
	Unlock(ctx context.Context, input UnlockInput) (*UnlockOutput, error)
}
