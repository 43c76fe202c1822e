// Package redistest starts an in-memory Redis for package tests.
package redistest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"wheelspin-backend/internal/platform/redis"
)

// New returns a client bound to a fresh miniredis instance that is
// stopped when the test ends.
func New(t *testing.T) (redis.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redis.Wrap(client), mr
}
