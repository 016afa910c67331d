package cache

import (
	"context"
	"fmt"
	"mileage-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

// Store is an in-memory key -> value cache that is loaded from its backend in
// full at startup and written back in full by Save. Nothing is persisted
// between Load and Save.
//
// Store is not safe for concurrent use.
type Store[V any] struct {
	name    string
	backend ports.CacheBackend[V]
	entries map[string]V
}

func NewStore[V any](name string, backend ports.CacheBackend[V]) *Store[V] {
	return &Store[V]{
		name:    name,
		backend: backend,
		entries: make(map[string]V),
	}
}

// Load replaces the in-memory entries with the backend contents.
func (s *Store[V]) Load(ctx context.Context) error {
	entries, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s cache: %w", s.name, err)
	}
	if entries == nil {
		entries = make(map[string]V)
	}
	s.entries = entries

	log.WithFields(log.Fields{"cache": s.name, "entries": len(entries)}).Info("cache loaded")
	return nil
}

// Save overwrites the backend with the in-memory entries.
func (s *Store[V]) Save(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.entries); err != nil {
		return fmt.Errorf("save %s cache: %w", s.name, err)
	}

	log.WithFields(log.Fields{"cache": s.name, "entries": len(s.entries)}).Info("cache saved")
	return nil
}

func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store[V]) Put(key string, v V) {
	s.entries[key] = v
}

func (s *Store[V]) Len() int { return len(s.entries) }
