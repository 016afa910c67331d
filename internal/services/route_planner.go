package services

import (
	"context"
	"fmt"
	"strings"

	"mileage-service/internal/domain"
	"mileage-service/internal/platform/obs"
	"mileage-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// PlanRoute geocodes every address concurrently, then requests one route
// through all of them in the given order.
//
// Blank entries are dropped. Fewer than two remaining addresses is a
// ConfigError and no request is made. The first geocoding failure cancels the
// others and aborts the plan; no partial result is returned.
func PlanRoute(
	ctx context.Context,
	addresses []string,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "services.PlanRoute")(&err)

	stops := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if a = strings.TrimSpace(a); a != "" {
			stops = append(stops, a)
		}
	}
	if len(stops) < 2 {
		return nil, &domain.ConfigError{
			Field:  "addresses",
			Reason: fmt.Sprintf("at least 2 addresses are required, got %d", len(stops)),
		}
	}

	coords := make([]domain.Coordinates, len(stops))

	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range stops {
		i, addr := i, addr
		g.Go(func() error {
			c, err := geocoder.Geocode(gctx, addr)
			if err != nil {
				return err
			}
			coords[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	res, err := router.Route(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return BuildRoutePlan(stops, res)
}

// BuildRoutePlan attaches per-leg distances to consecutive address pairs.
//
// When the routing response carries no legs at all, each row is a synthetic
// leg attributed the full route distance (not split). Mapbox occasionally
// omits legs; callers rely on getting one row per address pair regardless.
func BuildRoutePlan(stops []string, res ports.RouteResult) (*domain.RoutePlan, error) {
	n := len(stops) - 1
	if n < 1 {
		return nil, &domain.ConfigError{Field: "addresses", Reason: "at least 2 addresses are required"}
	}

	synthetic := len(res.LegMeters) == 0
	if !synthetic && len(res.LegMeters) != n {
		return nil, &domain.ServiceError{
			Op:      "plan route",
			Message: fmt.Sprintf("route has %d legs for %d stops", len(res.LegMeters), len(stops)),
		}
	}

	plan := &domain.RoutePlan{
		Addresses:     stops,
		Legs:          make([]domain.RouteLeg, 0, n),
		TotalMeters:   res.DistanceMeters,
		SyntheticLegs: synthetic,
	}

	for i := 0; i < n; i++ {
		meters := res.DistanceMeters
		if !synthetic {
			meters = res.LegMeters[i]
		}

		plan.Legs = append(plan.Legs, domain.RouteLeg{
			Index:  i + 1,
			From:   stops[i],
			To:     stops[i+1],
			Meters: meters,
		})
	}

	return plan, nil
}
