package mock

import (
	"context"
	"fmt"
	"mileage-service/internal/domain"
	"mileage-service/internal/ports"
	"sync"
)

type MockPlace struct {
	Address string
	Coord   domain.Coordinates
}

// MockPair is a driving distance between two addresses, usable in either direction.
type MockPair struct {
	From, To string
	Meters   float64
}

// MockProvider is an in-memory Geocoder and RouteProvider that counts calls.
// With DropLegs set, Route omits the per-leg breakdown.
type MockProvider struct {
	mu        sync.Mutex
	coords    map[string]domain.Coordinates
	addresses map[domain.Coordinates]string
	meters    map[string]float64

	DropLegs     bool
	GeocodeErr   map[string]error
	RouteErr     error
	geocodeCalls int
	routeCalls   int
}

func NewMockProvider(places []MockPlace, pairs []MockPair) *MockProvider {
	p := &MockProvider{
		coords:     make(map[string]domain.Coordinates, len(places)),
		addresses:  make(map[domain.Coordinates]string, len(places)),
		meters:     make(map[string]float64, 2*len(pairs)),
		GeocodeErr: map[string]error{},
	}
	for _, pl := range places {
		p.coords[pl.Address] = pl.Coord
		p.addresses[pl.Coord] = pl.Address
	}
	for _, pr := range pairs {
		p.meters[pr.From+"|"+pr.To] = pr.Meters
		p.meters[pr.To+"|"+pr.From] = pr.Meters
	}

	return p
}

func (p *MockProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.geocodeCalls++

	if err, ok := p.GeocodeErr[address]; ok {
		return domain.Coordinates{}, err
	}

	c, ok := p.coords[address]
	if !ok {
		return domain.Coordinates{}, &domain.NotFoundError{Address: address}
	}

	return c, nil
}

func (p *MockProvider) Route(ctx context.Context, coords []domain.Coordinates) (ports.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routeCalls++

	if p.RouteErr != nil {
		return ports.RouteResult{}, p.RouteErr
	}

	var res ports.RouteResult
	for i := 1; i < len(coords); i++ {
		from, to := p.addresses[coords[i-1]], p.addresses[coords[i]]
		m, ok := p.meters[from+"|"+to]
		if !ok {
			return ports.RouteResult{}, fmt.Errorf("missing pair %q -> %q", from, to)
		}
		res.DistanceMeters += m
		res.LegMeters = append(res.LegMeters, m)
	}

	if p.DropLegs {
		res.LegMeters = nil
	}

	return res, nil
}

func (p *MockProvider) GeocodeCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.geocodeCalls
}

func (p *MockProvider) RouteCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.routeCalls
}
