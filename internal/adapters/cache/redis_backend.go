package cache

import (
	"context"
	"fmt"
	"mileage-service/internal/platform/obs"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	GeocodeCacheKey  = "mileage:geocode_cache"
	DistanceCacheKey = "mileage:distance_cache"
)

// RedisBackend stores a cache as a single Redis hash. Field values are JSON.
type RedisBackend[V any] struct {
	Client *redis.Client
	Key    string
}

func NewRedisBackend[V any](client *redis.Client, key string) *RedisBackend[V] {
	return &RedisBackend[V]{Client: client, Key: key}
}

func (r *RedisBackend[V]) Load(ctx context.Context) (_ map[string]V, err error) {
	defer obs.Time(ctx, "redis.cache.Load")(&err)

	fields, err := r.Client.HGetAll(ctx, r.Key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis cache: hgetall %q: %w", r.Key, err)
	}

	out := make(map[string]V, len(fields))
	for k, raw := range fields {
		var v V
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("redis cache: decode field %q: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

// Save replaces the hash atomically in a MULTI/EXEC block.
func (r *RedisBackend[V]) Save(ctx context.Context, entries map[string]V) (err error) {
	defer obs.Time(ctx, "redis.cache.Save")(&err)

	values := make(map[string]any, len(entries))
	for k, v := range entries {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("redis cache: encode field %q: %w", k, err)
		}
		values[k] = string(b)
	}

	_, err = r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.Key)
		if len(values) > 0 {
			pipe.HSet(ctx, r.Key, values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache: replace %q: %w", r.Key, err)
	}

	return nil
}
