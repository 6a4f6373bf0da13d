package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"skyyatra/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedFlightRepository is a cache-aside decorator for route searches.
// Cache errors never fail a lookup; they only skip the cache.
type cachedFlightRepository struct {
	next FlightRepository
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedFlightRepository(next FlightRepository, rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) FlightRepository {
	return &cachedFlightRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With(zap.String("repository", "flight_cache")),
	}
}

func searchCacheKey(origin, destination string) string {
	return fmt.Sprintf("flights:search:%s:%s", strings.ToLower(origin), strings.ToLower(destination))
}

func (r *cachedFlightRepository) Search(ctx context.Context, origin, destination string) ([]*entity.Flight, error) {
	key := searchCacheKey(origin, destination)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var flights []*entity.Flight
		if err := json.Unmarshal(raw, &flights); err == nil {
			return flights, nil
		}
		r.log.Warn("Dropping unreadable cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		r.log.Warn("Flight cache read failed", zap.Error(err), zap.String("key", key))
	}

	flights, err := r.next.Search(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	// empty results are not cached so new inventory shows up immediately
	if len(flights) > 0 {
		if payload, err := json.Marshal(flights); err == nil {
			if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
				r.log.Warn("Flight cache write failed", zap.Error(err), zap.String("key", key))
			}
		}
	}

	return flights, nil
}

func (r *cachedFlightRepository) FindByID(ctx context.Context, id int64) (*entity.Flight, error) {
	return r.next.FindByID(ctx, id)
}
