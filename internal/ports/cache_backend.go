package ports

import "context"

// Port: durable storage for a flat key -> value cache.
// Load returns the whole mapping (empty when nothing was stored yet) and
// Save replaces the whole mapping.
type CacheBackend[V any] interface {
	Load(ctx context.Context) (map[string]V, error)
	Save(ctx context.Context, entries map[string]V) error
}
