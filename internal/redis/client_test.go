package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chore-quest/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NoError(t, redis.Ping(context.Background(), client, time.Second))
}

func TestNewFailoverClientValidation(t *testing.T) {
	_, err := redis.NewFailoverClient("", []string{"localhost:26379"}, nil)
	assert.Error(t, err)

	_, err = redis.NewFailoverClient("primary", nil, nil)
	assert.Error(t, err)
}

func TestPingUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)
	mr.Close()

	assert.Error(t, redis.Ping(context.Background(), client, 200*time.Millisecond))
}
