package domain

import (
	"fmt"
	"strings"
)

// PairSeparator joins two location IDs into a pair key.
const PairSeparator = "|"

// A named location: a short operator-chosen ID and its free-text address.
type Location struct {
	ID      string `yaml:"id"`
	Address string `yaml:"address"`
}

// ValidateLocations checks that IDs are unique, non-empty and usable in pair keys,
// and that every location has an address.
func ValidateLocations(locs []Location) error {
	seen := make(map[string]struct{}, len(locs))
	for i, l := range locs {
		id := l.ID
		if strings.TrimSpace(id) == "" {
			return &ConfigError{Field: "locations", Reason: fmt.Sprintf("entry %d has an empty id", i+1)}
		}
		if strings.TrimSpace(id) != id {
			return &ConfigError{Field: "locations", Reason: fmt.Sprintf("id %q has surrounding whitespace", id)}
		}
		if strings.Contains(id, PairSeparator) {
			return &ConfigError{Field: "locations", Reason: fmt.Sprintf("id %q must not contain %q", id, PairSeparator)}
		}
		if strings.TrimSpace(l.Address) == "" {
			return &ConfigError{Field: "locations", Reason: fmt.Sprintf("id %q has an empty address", id)}
		}
		if _, ok := seen[id]; ok {
			return &ConfigError{Field: "locations", Reason: fmt.Sprintf("duplicate id %q", id)}
		}
		seen[id] = struct{}{}
	}

	return nil
}
