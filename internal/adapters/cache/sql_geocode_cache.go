package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mileage-service/internal/domain"
	"mileage-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeBackend is a SQL-backed cache mapping literal address strings to
// coordinates.
type SQLGeocodeBackend struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLGeocodeBackend(db *sql.DB, dialect Dialect) *SQLGeocodeBackend {
	return &SQLGeocodeBackend{DB: db, Dialect: dialect}
}

// Fetch every cached address.
func (s *SQLGeocodeBackend) Load(ctx context.Context) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT address, lon, lat
    FROM geocode_cache;
	`)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Coordinates)
	for rows.Next() {
		var addr string
		var lon, lat float64
		if err := rows.Scan(&addr, &lon, &lat); err != nil {
			return nil, fmt.Errorf("get geocode cache: scan rows: %w", err)
		}
		out[addr] = domain.Coordinates{Lon: lon, Lat: lat}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get geocode cache: row iteration: %w", err)
	}

	return out, nil
}

// Replace the cached address -> coordinate mappings.
func (s *SQLGeocodeBackend) Save(ctx context.Context, entries map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.cache.Save")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM geocode_cache;`); err != nil {
		return fmt.Errorf("insert geocode cache: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO geocode_cache (address, lon, lat)
    VALUES (%s, %s, %s);
	`, s.Dialect.bind(1), s.Dialect.bind(2), s.Dialect.bind(3)))
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for addr, c := range entries {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}

		if _, err := stmt.ExecContext(ctx, addr, c.Lon, c.Lat); err != nil {
			return fmt.Errorf("insert geocode cache coord=%q: %w", addr, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}

	return nil
}
