package main

import (
	"net/http"
	"time"

	"mileage-service/internal/adapters/mapbox"
	"mileage-service/internal/api"
	"mileage-service/internal/config"
	"mileage-service/internal/platform/obs"

	log "github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires the Mapbox adapter behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	obs.SetupLogging(cfg.LogLevel)

	if err := config.ValidateAccessToken(cfg.AccessToken); err != nil {
		log.Fatal(err)
	}

	provider, err := mapbox.NewMapboxProvider(mapbox.Options{
		AccessToken: cfg.AccessToken,
		BaseURL:     cfg.BaseURL,
		Profile:     cfg.Profile,
	})
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(provider, provider)

	// Write timeout covers a full geocode fan-out plus one routing call.
	log.WithField("addr", ":"+cfg.Port).Info("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
