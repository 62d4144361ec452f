// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// server is closed when the test ends.
func CreateTestRedisClient(t testing.TB) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

// CreateTestRedisClientWithContext creates an in-memory Redis client after
// letting setupFunc populate the server
func CreateTestRedisClientWithContext(t testing.TB, setupFunc func(mr *miniredis.Miniredis)) redis.Client {
	t.Helper()

	client, mr := CreateTestRedisClient(t)
	if setupFunc != nil {
		setupFunc(mr)
	}

	return client
}

// FlushTestRedis drops every key so one client can be reused across tests
func FlushTestRedis(ctx context.Context, client redis.Client) error {
	return client.FlushAll(ctx).Err()
}
