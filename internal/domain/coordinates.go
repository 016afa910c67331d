package domain

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/s2"
)

// Immutable geographic coordinates (longitude, latitude), WGS84 degrees.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// String renders the "lon,lat" form used in routing request paths.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// Validate rejects coordinates outside the valid latitude/longitude range.
// NaN values fail the range check as well.
func (c Coordinates) Validate() error {
	if !s2.LatLngFromDegrees(c.Lat, c.Lon).IsValid() {
		return fmt.Errorf("invalid coordinates lon=%v lat=%v", c.Lon, c.Lat)
	}
	return nil
}
