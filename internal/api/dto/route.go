package dto

type RouteRequest struct {
	Addresses []string `json:"addresses"`
}

type RouteLegResponse struct {
	Index  int     `json:"index"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Meters float64 `json:"meters"`
	Miles  string  `json:"miles"`
}

type RouteResponse struct {
	Legs          []RouteLegResponse `json:"legs"`
	TotalMeters   float64            `json:"total_meters"`
	TotalMiles    string             `json:"total_miles"`
	SyntheticLegs bool               `json:"synthetic_legs"`
}
