// Package cache is the shared response cache behind the admin list and
// detail endpoints. Entries are JSON snapshots of upstream responses;
// mutations invalidate whole entity prefixes rather than patching entries.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
)

// Store is the cache surface services depend on. A miss is (false, nil);
// errors are reserved for real cache failures so callers can degrade to the
// upstream instead of failing the request.
type Store interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, prefixes ...string) error
}

// ListKey builds the cache key for one page of an entity list.
func ListKey(entity string, params pagination.Params) string {
	return entity + ":list:page=" + strconv.Itoa(params.Page) + ":size=" + strconv.Itoa(params.Size)
}

// DetailKey builds the cache key for a single entity.
func DetailKey(entity string, id int64) string {
	return entity + ":id=" + strconv.FormatInt(id, 10)
}

// RedisStore implements Store on Redis with a shared TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cache store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

var _ Store = (*RedisStore)(nil)

// Get loads the entry at key into out. It returns false on a miss.
func (s *RedisStore) Get(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshal cached %s: %w", key, err)
	}
	return true, nil
}

// Set stores value at key with the shared TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every key under the given prefixes. SCAN keeps the
// operation incremental so large caches never block Redis.
func (s *RedisStore) Invalidate(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("redis del %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan %s: %w", prefix, err)
		}
	}
	return nil
}
