package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"reddit-pulse/internal/model"
)

// RedisStore caches pipeline result bundles keyed by the identity of the
// dataset that produced them. The cache is explicit: callers pass the
// source key in and can invalidate it; no process-wide memoization.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func resultKey(source string) string {
	return fmt.Sprintf("analytics:result:%s", source)
}

const latestKey = "analytics:latest"

// SourceKey derives the cache identity of a dataset file from its path,
// size, and modification time. Rewriting the file changes the key, so a
// stale result is never served for fresh data.
func SourceKey(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", path, fi.Size(), fi.ModTime().UnixNano()), nil
}

// SaveResult stores the bundle under its source key and points the latest
// marker at it.
func (s *RedisStore) SaveResult(ctx context.Context, source string, res *model.Result, ttl time.Duration) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, resultKey(source), b, ttl).Err(); err != nil {
		return err
	}
	return s.rdb.Set(ctx, latestKey, source, ttl).Err()
}

// GetResult returns the cached bundle for a source key, or nil on a miss.
func (s *RedisStore) GetResult(ctx context.Context, source string) (*model.Result, error) {
	b, err := s.rdb.Get(ctx, resultKey(source)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res model.Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LatestResult returns the most recently saved bundle, or nil when no run
// has been cached yet.
func (s *RedisStore) LatestResult(ctx context.Context) (*model.Result, error) {
	source, err := s.rdb.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.GetResult(ctx, source)
}

// Invalidate drops the cached bundle for a source key, clearing the latest
// marker if it pointed there.
func (s *RedisStore) Invalidate(ctx context.Context, source string) error {
	if err := s.rdb.Del(ctx, resultKey(source)).Err(); err != nil {
		return err
	}
	current, err := s.rdb.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if current == source {
		return s.rdb.Del(ctx, latestKey).Err()
	}
	return nil
}
