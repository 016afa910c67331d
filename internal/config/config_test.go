package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mileage-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccessToken(t *testing.T) {
	for _, tok := range []string{"", "  ", PlaceholderToken} {
		err := ValidateAccessToken(tok)
		var ce *domain.ConfigError
		assert.True(t, errors.As(err, &ce), "token %q", tok)
	}

	assert.NoError(t, ValidateAccessToken("pk.eyJ1Ijoi"))
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "pk.test", cfg.AccessToken)
	assert.Equal(t, "redis", cfg.CacheBackend)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "driving", cfg.Profile)
}

func TestParseLocationsKeepsOrder(t *testing.T) {
	locs, err := ParseLocations([]byte(`
locations:
  - id: WH
    address: "300 W Washington St, Phoenix, AZ"
  - id: HQ
    address: "1901 W Madison St, Phoenix, AZ 85009"
  - id: DC
    address: "1 E Main St, Mesa, AZ"
`))
	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, []string{"WH", "HQ", "DC"}, []string{locs[0].ID, locs[1].ID, locs[2].ID})
	assert.Equal(t, "1901 W Madison St, Phoenix, AZ 85009", locs[1].Address)
}

func TestParseLocationsErrors(t *testing.T) {
	docs := []string{
		"locations: [",
		"locations:\n  - id: HQ\n    address: somewhere\n",
		"locations:\n  - id: HQ\n    address: a\n  - id: HQ\n    address: b\n",
	}

	for _, d := range docs {
		_, err := ParseLocations([]byte(d))
		var ce *domain.ConfigError
		assert.True(t, errors.As(err, &ce), "doc %q", d)
	}
}

func TestLoadLocationsMissingFile(t *testing.T) {
	_, err := LoadLocations(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
