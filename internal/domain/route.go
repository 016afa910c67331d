package domain

// Represents a single leg of a multi-stop route, between two consecutive stops.
// Index is 1-based in route order.
type RouteLeg struct {
	Index  int
	From   string
	To     string
	Meters float64
}

func (l RouteLeg) Miles() float64 { return MetersToMiles(l.Meters) }

// Represents the driving route through an ordered list of addresses.
// A RoutePlan is the output of a routing lookup and describes one leg per
// consecutive address pair, along with the total route distance.
//
// SyntheticLegs is set when the routing service returned no per-leg breakdown.
// Every leg then carries the full route distance rather than a split of it.
type RoutePlan struct {
	Addresses     []string
	Legs          []RouteLeg
	TotalMeters   float64
	SyntheticLegs bool
}

func (p *RoutePlan) TotalMiles() float64 { return MetersToMiles(p.TotalMeters) }
