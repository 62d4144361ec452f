package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories rely on. Anything
// implementing redis.UniversalClient satisfies it.
type Client interface {
	redis.UniversalClient
}

// Pipeliner is used for multi-key writes that must land together.
type Pipeliner interface {
	redis.Pipeliner
}

// Nil is returned by reads of missing keys.
const Nil = redis.Nil
