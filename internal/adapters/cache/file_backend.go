package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

const (
	GeocodeCacheFile  = "geocode_cache.json"
	DistanceCacheFile = "distance_cache.json"
)

// FileBackend persists a cache as one flat, pretty-printed JSON object.
// Writes truncate the file in place; a crash mid-write can leave it corrupt,
// in which case the file should be deleted.
type FileBackend[V any] struct {
	Path string
}

func NewFileBackend[V any](path string) *FileBackend[V] {
	return &FileBackend[V]{Path: path}
}

// Load reads the file. A missing file is an empty cache.
func (f *FileBackend[V]) Load(ctx context.Context) (map[string]V, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]V{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file cache: read %q: %w", f.Path, err)
	}

	out := map[string]V{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("file cache: parse %q: %w", f.Path, err)
	}

	return out, nil
}

// Save writes entries with 2-space indentation and sorted keys.
func (f *FileBackend[V]) Save(ctx context.Context, entries map[string]V) error {
	if entries == nil {
		entries = map[string]V{}
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("file cache: encode: %w", err)
	}

	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("file cache: create dir %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(f.Path, b, 0o644); err != nil {
		return fmt.Errorf("file cache: write %q: %w", f.Path, err)
	}

	return nil
}
