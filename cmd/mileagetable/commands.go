package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mileage-service/internal/adapters/cache"
	"mileage-service/internal/adapters/mapbox"
	"mileage-service/internal/config"
	"mileage-service/internal/domain"
	"mileage-service/internal/render"
	"mileage-service/internal/services"

	log "github.com/sirupsen/logrus"
)

type buildOptions struct {
	Mapbox        mapbox.Options
	Cache         cache.Options
	LocationsPath string
	OutputPath    string
	OutputFormat  string
	OutputName    string
}

// runBuild computes the full mileage table and writes the generated source file.
// Any error aborts the run before the caches are flushed.
func runBuild(ctx context.Context, opts buildOptions) error {
	if err := config.ValidateAccessToken(opts.Mapbox.AccessToken); err != nil {
		return err
	}

	locs, err := config.LoadLocations(opts.LocationsPath)
	if err != nil {
		return err
	}

	provider, err := mapbox.NewMapboxProvider(opts.Mapbox)
	if err != nil {
		return err
	}

	backends, err := cache.OpenBackends(ctx, opts.Cache)
	if err != nil {
		return err
	}
	defer backends.Close()

	builder := &services.MileageTableBuilder{
		Geocoder:  provider,
		Router:    provider,
		Coords:    cache.NewStore[domain.Coordinates]("geocode", backends.Geocode),
		Distances: cache.NewStore[float64]("distance", backends.Distance),
	}

	table, err := builder.Run(ctx, locs)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.WriteMileageTable(&buf, opts.OutputFormat, opts.OutputName, table); err != nil {
		return err
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.WithFields(log.Fields{
		"path":      opts.OutputPath,
		"locations": len(locs),
		"entries":   table.Len(),
	}).Info("mileage table written")

	return nil
}

// runRoute plans a route through addresses and prints the leg table to w.
func runRoute(ctx context.Context, opts mapbox.Options, addresses []string, w io.Writer) error {
	if err := config.ValidateAccessToken(opts.AccessToken); err != nil {
		return err
	}

	provider, err := mapbox.NewMapboxProvider(opts)
	if err != nil {
		return err
	}

	plan, err := services.PlanRoute(ctx, addresses, provider, provider)
	if err != nil {
		return err
	}

	return render.WriteRouteTable(w, plan)
}
