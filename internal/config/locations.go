package config

import (
	"fmt"
	"os"

	"mileage-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type locationsFile struct {
	Locations []domain.Location `yaml:"locations"`
}

// LoadLocations reads the ordered location list from a YAML file.
func LoadLocations(path string) ([]domain.Location, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load locations: read %q: %w", path, err)
	}

	return ParseLocations(b)
}

func ParseLocations(b []byte) ([]domain.Location, error) {
	var f locationsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, &domain.ConfigError{Field: "locations", Reason: fmt.Sprintf("parse yaml: %v", err)}
	}

	if len(f.Locations) < 2 {
		return nil, &domain.ConfigError{
			Field:  "locations",
			Reason: fmt.Sprintf("at least 2 locations are required, got %d", len(f.Locations)),
		}
	}
	if err := domain.ValidateLocations(f.Locations); err != nil {
		return nil, err
	}

	return f.Locations, nil
}
