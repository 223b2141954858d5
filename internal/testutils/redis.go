// Package testutils provides shared fixtures for tests: an in-memory Redis
// and a small geography dataset.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/celala99/cela-geo-quest/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// server is closed through t.Cleanup.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
