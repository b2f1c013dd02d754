package companionactivity

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chore-quest/internal/errors"
	redisclient "github.com/KirkDiggler/chore-quest/internal/redis"
)

const (
	// Key pattern: companion:activity:{player_id}:{day}
	activityKeyPrefix = "companion:activity:"

	// DefaultRetention keeps a day's log around long enough to cover every timezone.
	DefaultRetention = 48 * time.Hour

	errPlayerIDEmpty = "player ID cannot be empty"
	errDayEmpty      = "day cannot be empty"
)

// recordScript appends ARGV[1] to the list at KEYS[1] unless it already holds
// ARGV[2] entries. Returns the list contents, or false when the cap is hit.
var recordScript = redis.NewScript(`
local n = redis.call("LLEN", KEYS[1])
if n >= tonumber(ARGV[2]) then
  return false
end
redis.call("RPUSH", KEYS[1], ARGV[1])
redis.call("EXPIRE", KEYS[1], ARGV[3])
return redis.call("LRANGE", KEYS[1], 0, -1)
`)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// Retention defaults to DefaultRetention.
	Retention time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	// EXPIRE takes whole seconds; anything shorter would drop the log right away
	if c.Retention != 0 && c.Retention < time.Second {
		return errors.InvalidArgumentf("retention must be at least 1s, got %s", c.Retention)
	}
	return nil
}

type redisRepository struct {
	client    redisclient.Client
	retention time.Duration
}

// NewRedisRepository creates a new Redis repository for companion activity
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	retention := cfg.Retention
	if retention == 0 {
		retention = DefaultRetention
	}

	return &redisRepository{client: cfg.Client, retention: retention}, nil
}

var _ Repository = (*redisRepository)(nil)

func buildKey(playerID, day string) string {
	return activityKeyPrefix + playerID + ":" + day
}

func validateDay(playerID, day string) error {
	if playerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if day == "" {
		return errors.InvalidArgument(errDayEmpty)
	}
	return nil
}

// Get returns the actions logged for a player on a day
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateDay(input.PlayerID, input.Day); err != nil {
		return nil, err
	}

	actions, err := r.client.LRange(ctx, buildKey(input.PlayerID, input.Day), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read companion activity")
	}

	return &GetOutput{Log: &DayLog{PlayerID: input.PlayerID, Day: input.Day, Actions: actions}}, nil
}

// Record appends an action atomically with the cap check
func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if err := validateDay(input.PlayerID, input.Day); err != nil {
		return nil, err
	}
	if input.Action == "" {
		return nil, errors.InvalidArgument("action cannot be empty")
	}
	if input.Limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", input.Limit)
	}

	key := buildKey(input.PlayerID, input.Day)
	res, err := recordScript.Run(ctx, r.client, []string{key},
		input.Action, input.Limit, int(r.retention.Seconds())).StringSlice()
	if err == redis.Nil {
		return nil, errors.ResourceExhaustedf("companion already had %d interactions today", input.Limit).
			WithMeta("limit", input.Limit)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record companion activity")
	}

	return &RecordOutput{Log: &DayLog{PlayerID: input.PlayerID, Day: input.Day, Actions: res}}, nil
}

// Undo removes the latest matching action from the day's log.
func (r *redisRepository) Undo(ctx context.Context, input UndoInput) error {
	if err := validateDay(input.PlayerID, input.Day); err != nil {
		return err
	}
	if input.Action == "" {
		return errors.InvalidArgument("action cannot be empty")
	}

	if err := r.client.LRem(ctx, buildKey(input.PlayerID, input.Day), -1, input.Action).Err(); err != nil {
		return errors.Wrapf(err, "failed to undo companion activity")
	}
	return nil
}
