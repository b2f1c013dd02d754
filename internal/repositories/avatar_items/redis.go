package avataritems

import (
	"context"
	"strings"

	"github.com/KirkDiggler/chore-quest/internal/errors"
	redisclient "github.com/KirkDiggler/chore-quest/internal/redis"
)

const (
	// Key pattern: avatar:items:{player_id}, a set of "{category}/{item_id}"
	itemsKeyPrefix = "avatar:items:"
	memberSep      = "/"

	errPlayerIDEmpty = "player ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for unlocked items
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func buildKey(playerID string) string {
	return itemsKeyPrefix + playerID
}

// ListUnlocked returns every unlocked item grouped by category
func (r *redisRepository) ListUnlocked(ctx context.Context, input ListUnlockedInput) (*ListUnlockedOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	members, err := r.client.SMembers(ctx, buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list unlocked items")
	}

	unlocked := make(map[string]map[string]bool)
	for _, m := range members {
		category, item, ok := strings.Cut(m, memberSep)
		if !ok {
			continue
		}
		if unlocked[category] == nil {
			unlocked[category] = make(map[string]bool)
		}
		unlocked[category][item] = true
	}

	return &ListUnlockedOutput{Unlocked: unlocked}, nil
}

// Unlock adds an item to the player's unlocked set
func (r *redisRepository) Unlock(ctx context.Context, input UnlockInput) (*UnlockOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("category", input.Category, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if strings.Contains(input.Category, memberSep) {
		vb.InvalidField("category", "must not contain "+memberSep)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	added, err := r.client.SAdd(ctx, buildKey(input.PlayerID), input.Category+memberSep+input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unlock item")
	}

	return &UnlockOutput{AlreadyUnlocked: added == 0}, nil
}
