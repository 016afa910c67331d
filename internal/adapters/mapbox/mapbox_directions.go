package mapbox

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"mileage-service/internal/domain"
	"mileage-service/internal/platform/obs"
	"mileage-service/internal/ports"
)

type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance *float64 `json:"distance"`
		Legs     []struct {
			Distance *float64 `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route requests driving directions through coords in order and returns the
// first candidate route's total and per-leg distance in meters.
// Geometry and turn-by-turn steps are not requested.
func (m *MapboxProvider) Route(
	ctx context.Context,
	coords []domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "mapbox.Route")(&err)

	if len(coords) < 2 {
		return ports.RouteResult{}, &domain.ConfigError{
			Field:  "coordinates",
			Reason: fmt.Sprintf("route needs at least 2 coordinates, got %d", len(coords)),
		}
	}

	points := make([]string, 0, len(coords))
	for _, c := range coords {
		points = append(points, c.String())
	}

	endpoint := fmt.Sprintf(
		"%s/directions/v5/mapbox/%s/%s",
		m.baseURL, m.profile, strings.Join(points, ";"),
	)

	q := url.Values{}
	q.Set("alternatives", "false")
	q.Set("overview", "false")
	q.Set("steps", "false")

	var decoded directionsResponse
	if err := m.getJSON(ctx, "mapbox.Route", endpoint, q, &decoded); err != nil {
		return ports.RouteResult{}, err
	}

	if len(decoded.Routes) == 0 {
		msg := "no routes returned"
		if decoded.Code != "" {
			msg = fmt.Sprintf("no routes returned (code=%s %s)", decoded.Code, decoded.Message)
		}
		return ports.RouteResult{}, &domain.ServiceError{Op: "mapbox.Route", Message: strings.TrimSpace(msg)}
	}

	first := decoded.Routes[0]
	if !validDistance(first.Distance) {
		return ports.RouteResult{}, &domain.ServiceError{Op: "mapbox.Route", Message: "route has no valid distance"}
	}

	legs := make([]float64, 0, len(first.Legs))
	for i, l := range first.Legs {
		if !validDistance(l.Distance) {
			return ports.RouteResult{}, &domain.ServiceError{
				Op:      "mapbox.Route",
				Message: fmt.Sprintf("leg %d has no valid distance", i),
			}
		}
		legs = append(legs, *l.Distance)
	}

	return ports.RouteResult{
		DistanceMeters: *first.Distance,
		LegMeters:      legs,
	}, nil
}

func validDistance(d *float64) bool {
	return d != nil && *d >= 0 && !math.IsNaN(*d) && !math.IsInf(*d, 0)
}
