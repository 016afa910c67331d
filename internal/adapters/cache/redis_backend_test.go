package cache

import (
	"context"
	"testing"

	"mileage-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedisBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)

	b := NewRedisBackend[domain.Coordinates](client, GeocodeCacheKey)

	empty, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	want := map[string]domain.Coordinates{"1 Main St": {Lon: -112.1, Lat: 33.4}}
	require.NoError(t, b.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisBackendSaveReplacesHash(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)

	b := NewRedisBackend[float64](client, DistanceCacheKey)
	require.NoError(t, b.Save(ctx, map[string]float64{"A|B": 1, "B|A": 1}))
	require.NoError(t, b.Save(ctx, map[string]float64{"A|C": 2, "C|A": 2}))

	keys, err := mr.HKeys(DistanceCacheKey)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A|C", "C|A"}, keys)

	require.NoError(t, b.Save(ctx, map[string]float64{}))
	assert.False(t, mr.Exists(DistanceCacheKey))
}

func TestOpenBackendsRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	b, err := OpenBackends(context.Background(), Options{Backend: BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Distance.Save(context.Background(), map[string]float64{"A|B": 3}))
	assert.True(t, mr.Exists(DistanceCacheKey))
}
