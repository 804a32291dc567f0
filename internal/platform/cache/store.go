package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// store is the byte-level cache backend used by the caching repositories.
// Failures are logged and treated as misses.
type store interface {
	name() string
	get(ctx context.Context, key string) ([]byte, bool)
	set(ctx context.Context, key string, value []byte, ttl time.Duration)
	del(ctx context.Context, keys ...string)
}

// redisStore keeps entries in Redis so every instance shares them.
type redisStore struct {
	rdb *redis.Client
}

func (s redisStore) name() string { return "redis" }

func (s redisStore) get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, len(b) > 0
}

func (s redisStore) set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

func (s redisStore) del(ctx context.Context, keys ...string) {
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "cache delete failed", "keys", keys, "error", err)
	}
}

// memoryStore keeps entries in process memory. It is used when Redis is not configured.
type memoryStore struct {
	c *gocache.Cache
}

func newMemoryStore(ttl time.Duration) memoryStore {
	return memoryStore{c: gocache.New(ttl, 2*ttl)}
}

func (s memoryStore) name() string { return "memory" }

func (s memoryStore) get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (s memoryStore) set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

func (s memoryStore) del(_ context.Context, keys ...string) {
	for _, k := range keys {
		s.c.Delete(k)
	}
}
