package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mileage-service/internal/platform/obs"
	"strings"
)

// SQLDistanceBackend is a SQL-backed cache of driving meters keyed by
// "A|B" pair keys.
type SQLDistanceBackend struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLDistanceBackend(db *sql.DB, dialect Dialect) *SQLDistanceBackend {
	return &SQLDistanceBackend{DB: db, Dialect: dialect}
}

// Fetch every cached pair distance.
func (s *SQLDistanceBackend) Load(ctx context.Context) (_ map[string]float64, err error) {
	defer obs.Time(ctx, "distance.cache.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("distance cache: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT pair_key, distance_meters
    FROM distance_cache;
	`)
	if err != nil {
		return nil, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var key string
		var meters float64
		if err := rows.Scan(&key, &meters); err != nil {
			return nil, fmt.Errorf("get distance cache: scan rows: %w", err)
		}
		out[key] = meters
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distance cache: row iteration: %w", err)
	}

	return out, nil
}

// Replace the cached pair distances.
func (s *SQLDistanceBackend) Save(ctx context.Context, entries map[string]float64) (err error) {
	defer obs.Time(ctx, "distance.cache.Save")(&err)

	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert distance cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM distance_cache;`); err != nil {
		return fmt.Errorf("insert distance cache: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO distance_cache (pair_key, distance_meters)
    VALUES (%s, %s);
	`, s.Dialect.bind(1), s.Dialect.bind(2)))
	if err != nil {
		return fmt.Errorf("insert distance cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, meters := range entries {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert distance cache: empty pair key")
		}

		if _, err := stmt.ExecContext(ctx, key, meters); err != nil {
			return fmt.Errorf("insert distance cache pair=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert distance cache commit: %w", err)
	}

	return nil
}
