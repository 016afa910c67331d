package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"mileage-service/internal/adapters/cache"
	"mileage-service/internal/adapters/mapbox"
	"mileage-service/internal/config"
	"mileage-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLocationsYAML = `
locations:
  - id: HQ
    address: "1901 W Madison St, Phoenix, AZ"
  - id: WH
    address: "300 W Washington St, Phoenix, AZ"
  - id: DC
    address: "20 E Main St, Mesa, AZ"
`

var fakeCenters = map[string]string{
	"1901 W Madison St, Phoenix, AZ":   "[-112.0997,33.4816]",
	"300 W Washington St, Phoenix, AZ": "[-112.0779,33.4484]",
	"20 E Main St, Mesa, AZ":           "[-111.8315,33.4152]",
}

// fakeMapbox serves the geocoding and directions endpoints and counts requests.
func fakeMapbox(t *testing.T) (*httptest.Server, *int64) {
	t.Helper()

	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		switch {
		case strings.HasPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"):
			addr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"), ".json")
			center, ok := fakeCenters[addr]
			if !ok {
				fmt.Fprint(w, `{"features":[]}`)
				return
			}
			fmt.Fprintf(w, `{"features":[{"center":%s}]}`, center)

		case strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/driving/"):
			// Distance derived from the path so each pair gets a distinct value.
			meters := 1000 * len(r.URL.Path) / 10
			fmt.Fprintf(w, `{"code":"Ok","routes":[{"distance":%d,"legs":[{"distance":%d}]}]}`, meters, meters)

		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func testBuildOptions(t *testing.T, baseURL, dir string) buildOptions {
	t.Helper()

	locPath := filepath.Join(dir, "locations.yaml")
	require.NoError(t, os.WriteFile(locPath, []byte(testLocationsYAML), 0o644))

	return buildOptions{
		Mapbox:        mapbox.Options{AccessToken: "pk.test", BaseURL: baseURL},
		Cache:         cache.Options{Backend: cache.BackendFile, Dir: filepath.Join(dir, "cache")},
		LocationsPath: locPath,
		OutputPath:    filepath.Join(dir, "out", "mileage_table.js"),
		OutputFormat:  "js",
		OutputName:    "mileageTable",
	}
}

func TestRunBuildWarmCacheMakesNoRequests(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv, calls := fakeMapbox(t)
	opts := testBuildOptions(t, srv.URL, dir)

	require.NoError(t, runBuild(ctx, opts))
	// 3 geocodes and 3 routes.
	assert.Equal(t, int64(6), atomic.LoadInt64(calls))

	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(first), `": `))

	require.NoError(t, runBuild(ctx, opts))
	assert.Equal(t, int64(6), atomic.LoadInt64(calls))

	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunBuildRejectsPlaceholderToken(t *testing.T) {
	dir := t.TempDir()
	srv, calls := fakeMapbox(t)
	opts := testBuildOptions(t, srv.URL, dir)
	opts.Mapbox.AccessToken = config.PlaceholderToken

	err := runBuild(context.Background(), opts)

	var ce *domain.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, int64(0), atomic.LoadInt64(calls))
}

func TestRunRoute(t *testing.T) {
	srv, _ := fakeMapbox(t)

	var out bytes.Buffer
	err := runRoute(context.Background(),
		mapbox.Options{AccessToken: "pk.test", BaseURL: srv.URL},
		[]string{"1901 W Madison St, Phoenix, AZ", "300 W Washington St, Phoenix, AZ"},
		&out,
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "TOTAL")
}

func TestRunRouteNeedsTwoAddresses(t *testing.T) {
	srv, calls := fakeMapbox(t)

	var out bytes.Buffer
	err := runRoute(context.Background(),
		mapbox.Options{AccessToken: "pk.test", BaseURL: srv.URL},
		[]string{"1901 W Madison St, Phoenix, AZ"},
		&out,
	)

	var ce *domain.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, int64(0), atomic.LoadInt64(calls))
}
