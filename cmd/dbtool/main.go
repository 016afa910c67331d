package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mileage-service/internal/adapters/cache"
	"mileage-service/internal/config"
	"mileage-service/internal/platform/db"
	"mileage-service/internal/platform/obs"

	log "github.com/sirupsen/logrus"
)

// dbtool provisions the SQL cache tables ahead of a batch run.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	obs.SetupLogging(cfg.LogLevel)

	conn, err := openCacheDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.WithField("backend", cfg.CacheBackend).Info("Initializing cache schema...")
	if err := cache.InitSchema(context.Background(), conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Info("Schema ready.")
}

func openCacheDB(cfg config.Config) (*sql.DB, error) {
	switch cfg.CacheBackend {
	case cache.BackendPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		return db.Open(cfg.DatabaseURL)
	case cache.BackendSQLite:
		return db.OpenSQLite(cfg.SQLitePath)
	}

	return nil, fmt.Errorf("CACHE_BACKEND=%q has no schema; use %q or %q",
		cfg.CacheBackend, cache.BackendSQLite, cache.BackendPostgres)
}
