package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
)

// ttlStore keeps JSON documents that disappear after their ttl. Both the
// Redis and the in-memory variants return nil, nil for a missing key.
type ttlStore[T any] interface {
	put(ctx context.Context, key string, value *T, ttl time.Duration) error
	get(ctx context.Context, key string) (*T, error)
	del(ctx context.Context, key string) error
	// claim succeeds for exactly one caller per key until ttl elapses.
	claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redisTTLStore[T any] struct {
	rdb    redis.Cmdable
	prefix string
}

func (s *redisTTLStore[T]) put(ctx context.Context, key string, value *T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s%s: %w", s.prefix, key, err)
	}
	return s.rdb.Set(ctx, s.prefix+key, payload, ttl).Err()
}

func (s *redisTTLStore[T]) get(ctx context.Context, key string) (*T, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode %s%s: %w", s.prefix, key, err)
	}
	return &value, nil
}

func (s *redisTTLStore[T]) del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}

func (s *redisTTLStore[T]) claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, s.prefix+key+":claim", 1, ttl).Result()
}

type memoryTTLStore[T any] struct {
	entries *ttlcache.Cache[string, T]
	claims  *ttlcache.Cache[string, struct{}]
}

func newMemoryTTLStore[T any]() *memoryTTLStore[T] {
	s := &memoryTTLStore[T]{
		entries: ttlcache.New[string, T](ttlcache.WithDisableTouchOnHit[string, T]()),
		claims:  ttlcache.New[string, struct{}](ttlcache.WithDisableTouchOnHit[string, struct{}]()),
	}
	go s.entries.Start()
	go s.claims.Start()
	return s
}

func (s *memoryTTLStore[T]) put(_ context.Context, key string, value *T, ttl time.Duration) error {
	// ttlcache treats a non-positive ttl as "never expires"
	if ttl <= 0 {
		s.entries.Delete(key)
		return nil
	}
	s.entries.Set(key, *value, ttl)
	return nil
}

func (s *memoryTTLStore[T]) get(_ context.Context, key string) (*T, error) {
	item := s.entries.Get(key)
	if item == nil || item.IsExpired() {
		return nil, nil
	}
	value := item.Value()
	return &value, nil
}

func (s *memoryTTLStore[T]) del(_ context.Context, key string) error {
	s.entries.Delete(key)
	return nil
}

func (s *memoryTTLStore[T]) claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	_, found := s.claims.GetOrSet(key, struct{}{}, ttlcache.WithTTL[string, struct{}](ttl))
	return !found, nil
}
