package ports

import (
	"context"
	"mileage-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the top-ranked match for address.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
