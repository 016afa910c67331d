package domain

import (
	"errors"
	"testing"
)

func TestMileageTableSetIsSymmetric(t *testing.T) {
	table := NewMileageTable()
	table.Set("A", "B", 12.5)

	ab, ok := table.Get("A", "B")
	if !ok {
		t.Fatal("A|B missing")
	}
	ba, ok := table.Get("B", "A")
	if !ok {
		t.Fatal("B|A missing")
	}
	if ab != ba {
		t.Fatalf("A|B = %v, B|A = %v", ab, ba)
	}
	if table.Len() != 2 {
		t.Fatalf("len = %d, want 2", table.Len())
	}

	keys := table.Keys()
	if keys[0] != "A|B" || keys[1] != "B|A" {
		t.Fatalf("keys = %v", keys)
	}
}

func TestValidateLocations(t *testing.T) {
	ok := []Location{{ID: "HQ", Address: "1 Main St"}, {ID: "WH", Address: "2 Main St"}}
	if err := ValidateLocations(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := [][]Location{
		{{ID: "", Address: "1 Main St"}},
		{{ID: " HQ", Address: "1 Main St"}},
		{{ID: "HQ\t", Address: "1 Main St"}},
		{{ID: "A|B", Address: "1 Main St"}},
		{{ID: "HQ", Address: "  "}},
		{{ID: "HQ", Address: "1 Main St"}, {ID: "HQ", Address: "2 Main St"}},
	}
	for i, locs := range bad {
		err := ValidateLocations(locs)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("case %d: expected ConfigError, got %v", i, err)
		}
	}
}
