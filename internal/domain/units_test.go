package domain

import (
	"math"
	"testing"
)

func TestMetersToMiles(t *testing.T) {
	cases := []struct {
		meters float64
		want   float64
	}{
		{meters: 1609.344, want: 1.00},
		{meters: 0, want: 0.00},
		{meters: 1000, want: 0.62},
		{meters: 2000, want: 1.24},
		{meters: 3000, want: 1.86},
	}

	for _, c := range cases {
		got := RoundMiles(MetersToMiles(c.meters))
		if math.Abs(got-c.want) > 0.001 {
			t.Errorf("RoundMiles(MetersToMiles(%v)) = %v, want %v", c.meters, got, c.want)
		}
	}
}

func TestFormatMiles(t *testing.T) {
	if got := FormatMiles(1609.344); got != "1.00" {
		t.Fatalf("FormatMiles(1609.344) = %q, want 1.00", got)
	}
	if got := FormatMiles(0); got != "0.00" {
		t.Fatalf("FormatMiles(0) = %q, want 0.00", got)
	}
	if got := FormatMiles(5000); got != "3.11" {
		t.Fatalf("FormatMiles(5000) = %q, want 3.11", got)
	}
}

func TestCoordinatesValidate(t *testing.T) {
	if err := (Coordinates{Lon: -112.09, Lat: 33.45}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Coordinates{Lon: -112.09, Lat: 95}).Validate(); err == nil {
		t.Fatal("expected error for latitude out of range")
	}
	if err := (Coordinates{Lon: math.NaN(), Lat: 10}).Validate(); err == nil {
		t.Fatal("expected error for NaN longitude")
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{Lon: -112.0915, Lat: 33.4484}
	if got := c.String(); got != "-112.0915,33.4484" {
		t.Fatalf("String() = %q", got)
	}
}
