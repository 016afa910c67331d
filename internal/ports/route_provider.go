package ports

import (
	"context"
	"mileage-service/internal/domain"
)

// Driving distance along an ordered list of coordinates.
// LegMeters holds one entry per consecutive coordinate pair, in input order,
// and may be empty when the service omits the per-leg breakdown.
type RouteResult struct {
	DistanceMeters float64
	LegMeters      []float64
}

// Contract for retrieving driving distance through a sequence of coordinates.
type RouteProvider interface {
	// Return the total and per-leg distance of the route visiting coords in order.
	Route(ctx context.Context, coords []domain.Coordinates) (RouteResult, error)
}
