package domain

import (
	"math"
	"strconv"
)

// MetersPerMile is the international mile.
const MetersPerMile = 1609.344

func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

// RoundMiles rounds to two decimal places.
func RoundMiles(miles float64) float64 {
	return math.Round(miles*100) / 100
}

// FormatMiles converts meters and renders the result with two decimal places.
func FormatMiles(meters float64) string {
	return strconv.FormatFloat(MetersToMiles(meters), 'f', 2, 64)
}
