package cache

import (
	"context"
	"database/sql"
	"fmt"
	"mileage-service/internal/domain"
	"mileage-service/internal/platform/db"
	"mileage-service/internal/ports"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// Backend names accepted by OpenBackends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Options struct {
	Backend     string
	Dir         string
	SQLitePath  string
	DatabaseURL string
	RedisAddr   string
}

// Backends bundles the coordinate and distance cache backends sharing one
// underlying connection.
type Backends struct {
	Geocode  ports.CacheBackend[domain.Coordinates]
	Distance ports.CacheBackend[float64]
	closer   func() error
}

func (b *Backends) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}

// OpenBackends connects the backend named by opts.Backend. SQL schemas are
// created when missing.
func OpenBackends(ctx context.Context, opts Options) (*Backends, error) {
	switch opts.Backend {
	case "", BackendFile:
		return &Backends{
			Geocode:  NewFileBackend[domain.Coordinates](filepath.Join(opts.Dir, GeocodeCacheFile)),
			Distance: NewFileBackend[float64](filepath.Join(opts.Dir, DistanceCacheFile)),
		}, nil

	case BackendSQLite:
		conn, err := db.OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open cache backends: %w", err)
		}
		return sqlBackends(ctx, conn, SQLite)

	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, &domain.ConfigError{Field: "DATABASE_URL", Reason: "required for the postgres cache backend"}
		}
		conn, err := db.Open(opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open cache backends: %w", err)
		}
		return sqlBackends(ctx, conn, Postgres)

	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("open cache backends: ping redis %q: %w", opts.RedisAddr, err)
		}
		return &Backends{
			Geocode:  NewRedisBackend[domain.Coordinates](client, GeocodeCacheKey),
			Distance: NewRedisBackend[float64](client, DistanceCacheKey),
			closer:   client.Close,
		}, nil
	}

	return nil, &domain.ConfigError{Field: "CACHE_BACKEND", Reason: fmt.Sprintf("unknown backend %q", opts.Backend)}
}

func sqlBackends(ctx context.Context, conn *sql.DB, dialect Dialect) (*Backends, error) {
	if err := InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open cache backends: %s: %w", dialect, err)
	}

	return &Backends{
		Geocode:  NewSQLGeocodeBackend(conn, dialect),
		Distance: NewSQLDistanceBackend(conn, dialect),
		closer:   conn.Close,
	}, nil
}
