package mapbox

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"mileage-service/internal/domain"
	"mileage-service/internal/platform/obs"
)

// Features is a pointer so a missing or null list is told apart from an
// empty one.
type geocodeResponse struct {
	Features *[]struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// Geocode resolves one address with the Mapbox places endpoint and returns the
// top-ranked match.
func (m *MapboxProvider) Geocode(
	ctx context.Context,
	address string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "mapbox.Geocode")(&err)

	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, &domain.ConfigError{Field: "address", Reason: "must be non-empty"}
	}

	endpoint := fmt.Sprintf(
		"%s/geocoding/v5/mapbox.places/%s.json",
		m.baseURL, url.PathEscape(address),
	)

	q := url.Values{}
	q.Set("limit", "1")

	var decoded geocodeResponse
	if err := m.getJSON(ctx, "mapbox.Geocode", endpoint, q, &decoded); err != nil {
		return domain.Coordinates{}, err
	}

	if decoded.Features == nil {
		return domain.Coordinates{}, &domain.ServiceError{
			Op:      "mapbox.Geocode",
			Message: "response has no features list",
		}
	}
	features := *decoded.Features
	if len(features) == 0 {
		return domain.Coordinates{}, &domain.NotFoundError{Address: address}
	}

	center := features[0].Center
	if len(center) != 2 {
		return domain.Coordinates{}, &domain.ServiceError{
			Op:      "mapbox.Geocode",
			Message: fmt.Sprintf("invalid coordinate format for %q", address),
		}
	}

	coords := domain.Coordinates{Lon: center[0], Lat: center[1]}
	if err := coords.Validate(); err != nil {
		return domain.Coordinates{}, &domain.ServiceError{Op: "mapbox.Geocode", Err: err}
	}

	return coords, nil
}
