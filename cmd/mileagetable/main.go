package main

import (
	"os"

	"mileage-service/internal/adapters/cache"
	"mileage-service/internal/adapters/mapbox"
	"mileage-service/internal/config"
	"mileage-service/internal/platform/obs"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadDotEnv()
	defaults := config.Load()

	app := &cli.App{
		Name:  "mileagetable",
		Usage: "driving mileage between addresses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Mapbox access token",
				EnvVars: []string{"MAPBOX_ACCESS_TOKEN"},
			},
			&cli.StringFlag{Name: "base-url", Value: defaults.BaseURL, EnvVars: []string{"MAPBOX_BASE_URL"}},
			&cli.StringFlag{Name: "profile", Value: defaults.Profile, EnvVars: []string{"MAPBOX_PROFILE"}},
			&cli.StringFlag{Name: "log-level", Value: defaults.LogLevel, EnvVars: []string{"LOG_LEVEL"}},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "add debug logs"},
		},
		Before: func(c *cli.Context) error {
			level := c.String("log-level")
			if c.Bool("debug") {
				level = "debug"
			}
			obs.SetupLogging(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "build",
				Aliases: []string{"b"},
				Usage:   "precompute the pairwise mileage table for the configured locations",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "locations", Value: defaults.LocationsPath, EnvVars: []string{"LOCATIONS_PATH"}},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: defaults.OutputPath, EnvVars: []string{"OUTPUT_PATH"}},
					&cli.StringFlag{Name: "format", Value: defaults.OutputFormat, EnvVars: []string{"OUTPUT_FORMAT"}, Usage: "js, go or json"},
					&cli.StringFlag{Name: "name", Value: defaults.OutputName, EnvVars: []string{"OUTPUT_NAME"}, Usage: "exported identifier"},
					&cli.StringFlag{Name: "cache-backend", Value: defaults.CacheBackend, EnvVars: []string{"CACHE_BACKEND"}, Usage: "file, sqlite, postgres or redis"},
					&cli.StringFlag{Name: "cache-dir", Value: defaults.CacheDir, EnvVars: []string{"CACHE_DIR"}},
					&cli.StringFlag{Name: "sqlite-path", Value: defaults.SQLitePath, EnvVars: []string{"SQLITE_PATH"}},
					&cli.StringFlag{Name: "database-url", EnvVars: []string{"DATABASE_URL"}},
					&cli.StringFlag{Name: "redis-addr", Value: defaults.RedisAddr, EnvVars: []string{"REDIS_ADDR"}},
				},
				Action: func(c *cli.Context) error {
					return runBuild(c.Context, buildOptions{
						Mapbox: mapboxOptions(c),
						Cache: cache.Options{
							Backend:     c.String("cache-backend"),
							Dir:         c.String("cache-dir"),
							SQLitePath:  c.String("sqlite-path"),
							DatabaseURL: c.String("database-url"),
							RedisAddr:   c.String("redis-addr"),
						},
						LocationsPath: c.String("locations"),
						OutputPath:    c.String("output"),
						OutputFormat:  c.String("format"),
						OutputName:    c.String("name"),
					})
				},
			},
			{
				Name:      "route",
				Aliases:   []string{"r"},
				Usage:     "print per-leg mileage for a route through the given addresses",
				ArgsUsage: "address address [address...]",
				Action: func(c *cli.Context) error {
					return runRoute(c.Context, mapboxOptions(c), c.Args().Slice(), os.Stdout)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func mapboxOptions(c *cli.Context) mapbox.Options {
	return mapbox.Options{
		AccessToken: c.String("token"),
		BaseURL:     c.String("base-url"),
		Profile:     c.String("profile"),
	}
}
