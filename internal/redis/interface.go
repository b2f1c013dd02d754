package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is what every repository is written against. Tests back it with
// miniredis rather than a mock.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key.
const Nil = redis.Nil
