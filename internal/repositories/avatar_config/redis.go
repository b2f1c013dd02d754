package avatarconfig

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	"github.com/KirkDiggler/chore-quest/internal/pkg/clock"
	"github.com/KirkDiggler/chore-quest/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/chore-quest/internal/redis"
)

const (
	// Key pattern: avatar:config:{player_id}
	configKeyPrefix = "avatar:config:"

	// optimistic transaction attempts before giving up on a contended key
	maxTxAttempts = 5

	errPlayerIDEmpty = "player ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("id_generator")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ids    idgen.Generator
}

// NewRedisRepository creates a new Redis repository for avatar configurations
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ids:    cfg.IDGenerator,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func buildKey(playerID string) string {
	return configKeyPrefix + playerID
}

// Get loads the saved avatar for a player
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.PlayerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no avatar saved for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get avatar from Redis")
	}

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Avatar: stored}, nil
}

// Save writes the configuration under a fresh revision
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	stored := &StoredAvatar{
		PlayerID:  input.PlayerID,
		Config:    input.Config,
		Revision:  r.ids.Generate(),
		UpdatedAt: r.clock.Now(),
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal avatar")
	}

	if err := r.client.Set(ctx, buildKey(input.PlayerID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store avatar in Redis")
	}

	return &SaveOutput{Avatar: stored}, nil
}

// AddCompanionXP adds XP inside a WATCH transaction so concurrent awards
// serialise. A player without a saved avatar starts from the defaults.
func (r *redisRepository) AddCompanionXP(ctx context.Context, input AddCompanionXPInput) (*AddCompanionXPOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("xp amount must not be negative, got %d", input.Amount)
	}

	key := buildKey(input.PlayerID)
	var output *AddCompanionXPOutput

	txf := func(tx *redis.Tx) error {
		stored, err := r.loadForUpdate(ctx, tx, input.PlayerID)
		if err != nil {
			return err
		}

		previous := stored.Config.PetXP
		stored.Config.PetXP = previous + input.Amount
		stored.Revision = r.ids.Generate()
		stored.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(stored)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal avatar")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		output = &AddCompanionXPOutput{Avatar: stored, PreviousXP: previous}
		return nil
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return output, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, errors.Wrapf(err, "failed to add companion xp")
	}

	return nil, errors.Unavailable("avatar is being updated concurrently, try again")
}

func (r *redisRepository) loadForUpdate(ctx context.Context, tx *redis.Tx, playerID string) (*StoredAvatar, error) {
	data, err := tx.Get(ctx, buildKey(playerID)).Bytes()
	if err == redis.Nil {
		return &StoredAvatar{
			PlayerID: playerID,
			Config:   entities.DefaultAvatarConfig(),
		}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatar from Redis")
	}
	return decode(data)
}

func decode(data []byte) (*StoredAvatar, error) {
	var stored StoredAvatar
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal avatar")
	}
	return &stored, nil
}
