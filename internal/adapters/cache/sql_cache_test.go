package cache

import (
	"context"
	"path/filepath"
	"testing"

	"mileage-service/internal/domain"
	"mileage-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackends(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	// Idempotent.
	require.NoError(t, InitSchema(ctx, conn))

	geo := NewSQLGeocodeBackend(conn, SQLite)
	dist := NewSQLDistanceBackend(conn, SQLite)

	empty, err := geo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	coords := map[string]domain.Coordinates{
		"1901 W Madison St, Phoenix, AZ 85009": {Lon: -112.0997, Lat: 33.4816},
		"300 W Washington St, Phoenix, AZ":     {Lon: -112.0779, Lat: 33.4484},
	}
	require.NoError(t, geo.Save(ctx, coords))

	gotCoords, err := geo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, coords, gotCoords)

	require.NoError(t, dist.Save(ctx, map[string]float64{"HQ|WH": 2500.5, "WH|HQ": 2500.5}))
	require.NoError(t, dist.Save(ctx, map[string]float64{"HQ|DC": 10, "DC|HQ": 10}))

	gotDist, err := dist.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"HQ|DC": 10, "DC|HQ": 10}, gotDist)
}

func TestSQLBackendRejectsEmptyKey(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, InitSchema(ctx, conn))

	err = NewSQLDistanceBackend(conn, SQLite).Save(ctx, map[string]float64{" ": 1})
	assert.ErrorContains(t, err, "empty pair key")
}

func TestDialectBind(t *testing.T) {
	assert.Equal(t, "?", SQLite.bind(2))
	assert.Equal(t, "$2", Postgres.bind(2))
}
