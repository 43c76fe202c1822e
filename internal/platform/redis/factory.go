package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wheelspin-backend/internal/common/config"
)

// Nil is returned by Get-style commands when the key does not exist.
const Nil = redis.Nil

type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, ttl ...time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SetXX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	TxPipeline() redis.Pipeliner
	Close() error
}

func CreateRedisClient(cfg *config.Config) (RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr(), err)
	}

	return &redisClientWrapper{client: client}, nil
}

// Wrap adapts an existing go-redis client, e.g. one pointed at a test server.
func Wrap(client *redis.Client) RedisClient {
	return &redisClientWrapper{client: client}
}

type redisClientWrapper struct {
	client *redis.Client
}

func (w *redisClientWrapper) Ping(ctx context.Context) *redis.StatusCmd {
	return w.client.Ping(ctx)
}

func (w *redisClientWrapper) Set(ctx context.Context, key string, value interface{}, ttl ...time.Duration) *redis.StatusCmd {
	if len(ttl) > 0 {
		return w.client.Set(ctx, key, value, ttl[0])
	}
	return w.client.Set(ctx, key, value, 0)
}

func (w *redisClientWrapper) Get(ctx context.Context, key string) *redis.StringCmd {
	return w.client.Get(ctx, key)
}

func (w *redisClientWrapper) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return w.client.Del(ctx, keys...)
}

// SetXX пишет значение только если ключ уже существует
func (w *redisClientWrapper) SetXX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	return w.client.SetXX(ctx, key, value, ttl)
}

func (w *redisClientWrapper) SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	return w.client.SAdd(ctx, key, members...)
}

func (w *redisClientWrapper) SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	return w.client.SRem(ctx, key, members...)
}

func (w *redisClientWrapper) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	return w.client.SMembers(ctx, key)
}

func (w *redisClientWrapper) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return w.client.LRange(ctx, key, start, stop)
}

func (w *redisClientWrapper) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	return w.client.Keys(ctx, pattern)
}

func (w *redisClientWrapper) TxPipeline() redis.Pipeliner {
	return w.client.TxPipeline()
}

func (w *redisClientWrapper) Close() error {
	return w.client.Close()
}
