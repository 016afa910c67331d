package mapbox

import (
	"net/http"
	"strings"
	"time"

	"mileage-service/internal/domain"
)

const (
	DefaultBaseURL = "https://api.mapbox.com"
	DefaultProfile = "driving"
)

type Options struct {
	AccessToken string
	BaseURL     string
	Profile     string
	HTTPClient  *http.Client
}

// MapboxProvider implements Geocoder and RouteProvider using the Mapbox
// geocoding and directions APIs.
//
// Every failure is returned to the caller as-is; there is no retry.
// The provider is safe for concurrent use.
type MapboxProvider struct {
	session     *http.Client
	accessToken string
	baseURL     string
	profile     string
}

func NewMapboxProvider(opts Options) (*MapboxProvider, error) {
	if strings.TrimSpace(opts.AccessToken) == "" {
		return nil, &domain.ConfigError{Field: "MAPBOX_ACCESS_TOKEN", Reason: "access token is empty"}
	}

	provider := &MapboxProvider{
		session:     opts.HTTPClient,
		accessToken: opts.AccessToken,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		profile:     opts.Profile,
	}

	if provider.session == nil {
		provider.session = &http.Client{Timeout: 10 * time.Second}
	}
	if provider.baseURL == "" {
		provider.baseURL = DefaultBaseURL
	}
	if provider.profile == "" {
		provider.profile = DefaultProfile
	}

	return provider, nil
}
