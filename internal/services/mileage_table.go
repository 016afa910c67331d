package services

import (
	"context"
	"fmt"

	"mileage-service/internal/adapters/cache"
	"mileage-service/internal/domain"
	"mileage-service/internal/platform/obs"
	"mileage-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

// MileageTableBuilder precomputes driving miles between every pair of a fixed
// location list. Lookups go through the coordinate and distance caches first
// and run one at a time.
type MileageTableBuilder struct {
	Geocoder  ports.Geocoder
	Router    ports.RouteProvider
	Coords    *cache.Store[domain.Coordinates]
	Distances *cache.Store[float64]
}

// Run loads both caches, builds the table and flushes the caches.
// Caches are only written after the whole table succeeded; a failure discards
// every lookup made during this run.
func (b *MileageTableBuilder) Run(ctx context.Context, locs []domain.Location) (*domain.MileageTable, error) {
	if err := b.Coords.Load(ctx); err != nil {
		return nil, fmt.Errorf("run mileage table: %w", err)
	}
	if err := b.Distances.Load(ctx); err != nil {
		return nil, fmt.Errorf("run mileage table: %w", err)
	}

	table, err := b.Build(ctx, locs)
	if err != nil {
		return nil, err
	}

	if err := b.Coords.Save(ctx); err != nil {
		return nil, fmt.Errorf("run mileage table: %w", err)
	}
	if err := b.Distances.Save(ctx); err != nil {
		return nil, fmt.Errorf("run mileage table: %w", err)
	}

	return table, nil
}

// Build resolves every unordered pair of locs and records it under both key
// orderings, in miles rounded to two decimals.
func (b *MileageTableBuilder) Build(ctx context.Context, locs []domain.Location) (_ *domain.MileageTable, err error) {
	defer obs.Time(ctx, "services.BuildMileageTable")(&err)

	if err := domain.ValidateLocations(locs); err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Location, len(locs))
	ids := make([]string, 0, len(locs))
	for _, l := range locs {
		byID[l.ID] = l
		ids = append(ids, l.ID)
	}

	table := domain.NewMileageTable()
	for _, p := range EnumeratePairs(ids) {
		meters, cached, err := b.resolveDistance(ctx, byID[p.A], byID[p.B])
		if err != nil {
			return nil, fmt.Errorf("build mileage table: pair %s: %w", p.Key(), err)
		}

		miles := domain.RoundMiles(domain.MetersToMiles(meters))
		table.Set(p.A, p.B, miles)

		log.WithFields(log.Fields{
			"pair":   p.Key(),
			"miles":  miles,
			"cached": cached,
		}).Info("pair resolved")
	}

	return table, nil
}

// resolveDistance returns the cached meters for from|to, or geocodes both
// addresses and routes between them, caching both orderings.
func (b *MileageTableBuilder) resolveDistance(
	ctx context.Context,
	from, to domain.Location,
) (meters float64, cached bool, err error) {
	key := PairKey(from.ID, to.ID)
	if m, ok := b.Distances.Get(key); ok {
		return m, true, nil
	}

	origin, err := ResolveAddress(ctx, b.Geocoder, b.Coords, from.Address)
	if err != nil {
		return 0, false, err
	}
	destination, err := ResolveAddress(ctx, b.Geocoder, b.Coords, to.Address)
	if err != nil {
		return 0, false, err
	}

	res, err := b.Router.Route(ctx, []domain.Coordinates{origin, destination})
	if err != nil {
		return 0, false, fmt.Errorf("route %s: %w", key, err)
	}

	b.Distances.Put(key, res.DistanceMeters)
	b.Distances.Put(PairKey(to.ID, from.ID), res.DistanceMeters)

	return res.DistanceMeters, false, nil
}

// ResolveAddress returns the cached coordinates of address, keyed by the raw
// address string, geocoding and caching them on a miss.
func ResolveAddress(
	ctx context.Context,
	geocoder ports.Geocoder,
	store *cache.Store[domain.Coordinates],
	address string,
) (domain.Coordinates, error) {
	if c, ok := store.Get(address); ok {
		return c, nil
	}

	c, err := geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve address %q: %w", address, err)
	}

	store.Put(address, c)
	return c, nil
}
