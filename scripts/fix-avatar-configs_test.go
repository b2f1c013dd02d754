package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repairKey = "avatar:config:player-1"

func newRepairClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRepairSanitizesCurrentValue(t *testing.T) {
	client, mr := newRepairClient(t)
	ctx := context.Background()

	// Scanned copy: bad colour, no pet XP yet.
	require.NoError(t, mr.Set(repairKey, `{"player_id":"player-1","revision":3,"config":{"version":1,"head_color":"plaid","pet_xp":0}}`))
	scanned, err := client.Get(ctx, repairKey).Bytes()
	require.NoError(t, err)
	var stored storedAvatar
	require.NoError(t, json.Unmarshal(scanned, &stored))
	require.NotEmpty(t, problems(stored.Config))

	// An interaction awards XP before the repair runs.
	require.NoError(t, mr.Set(repairKey, `{"player_id":"player-1","revision":4,"config":{"version":1,"head_color":"plaid","pet_xp":12}}`))

	require.NoError(t, repair(ctx, client, repairKey))

	after, err := client.Get(ctx, repairKey).Bytes()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(after, &raw))
	assert.JSONEq(t, `4`, string(raw["revision"]))

	var repaired storedAvatar
	require.NoError(t, json.Unmarshal(after, &repaired))
	assert.Equal(t, 12, repaired.Config.PetXP)
	assert.NotEqual(t, "plaid", repaired.Config.HeadColor)
	assert.Empty(t, problems(repaired.Config))
}

func TestRepairMissingKey(t *testing.T) {
	client, _ := newRepairClient(t)

	err := repair(context.Background(), client, repairKey)
	assert.ErrorIs(t, err, redis.Nil)
}
