package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alexanderramin/learnhub/internal/config"
)

// redisClient is the subset of *redis.Client used here.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	StrLen(ctx context.Context, key string) *redis.IntCmd
	Close() error
}

// RedisAdapter stores the payload under one Redis key with no expiry.
type RedisAdapter struct {
	client redisClient
	key    string
	addr   string
}

// OpenRedis connects and pings the server so a bad address fails at
// startup rather than on the first background save.
func OpenRedis(ctx context.Context, cfg config.RedisConfig, key string) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return newRedisAdapter(client, key, cfg.Addr), nil
}

func newRedisAdapter(client redisClient, key, addr string) *RedisAdapter {
	return &RedisAdapter{client: client, key: key, addr: addr}
}

func (a *RedisAdapter) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := a.client.Get(ctx, a.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis GET %s: %w", a.key, err)
	}
	return data, true, nil
}

func (a *RedisAdapter) Save(ctx context.Context, data []byte) error {
	if err := a.client.Set(ctx, a.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", a.key, err)
	}
	return nil
}

func (a *RedisAdapter) Describe(ctx context.Context) (Info, error) {
	info := Info{Backend: config.BackendRedis, Location: a.addr, Key: a.key}
	n, err := a.client.StrLen(ctx, a.key).Result()
	if err != nil {
		return info, fmt.Errorf("redis STRLEN %s: %w", a.key, err)
	}
	info.Found = n > 0
	info.SizeBytes = int(n)
	return info, nil
}

func (a *RedisAdapter) Close() error {
	return a.client.Close()
}
