// Package cache implements the remote data cache: a key-indexed store of
// backend resources with invalidation-on-mutation semantics. Concurrent
// reads of the same key share one in-flight fetch, and a monotonic version
// per entry discards responses that complete after an invalidation.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/orderdesk/console/internal/api/metrics"
)

// Category groups cache entries by resource kind. Invalidation operates on
// whole categories, mirroring how every mutation on a resource kind makes
// all cached views of it suspect.
type Category string

const (
	CategoryOrders    Category = "orders"
	CategoryClients   Category = "clients"
	CategoryEmployees Category = "employees"
	CategoryAnalytics Category = "analytics"
)

// Key identifies one cache entry. An empty ID addresses the full collection.
type Key struct {
	Category Category
	ID       string
}

func (k Key) String() string {
	return string(k.Category) + "/" + k.ID
}

// FetchFunc loads the authoritative value for a key from the backend.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value any
	err   error
	fresh bool
	// version increments on every invalidation. A fetch result is applied
	// only when the version still matches the one captured at fetch start,
	// which drops out-of-order completions and post-invalidation responses.
	version uint64
}

// Store is the process-wide remote data cache. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
	log     zerolog.Logger
}

func NewStore(log zerolog.Logger) *Store {
	return &Store{
		entries: make(map[Key]*entry),
		log:     log,
	}
}

// Get returns the cached value for key, fetching it when the entry is
// missing, stale, or previously errored. A failed fetch stores its error on
// the entry and is not retried automatically; the next Get re-invokes fetch.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	if e.fresh && e.err == nil {
		value := e.value
		s.mu.Unlock()
		metrics.CacheHitsTotal.WithLabelValues(string(key.Category)).Inc()
		return value, nil
	}
	version := e.version
	s.mu.Unlock()

	metrics.CacheMissesTotal.WithLabelValues(string(key.Category)).Inc()

	value, err, _ := s.group.Do(key.String(), func() (any, error) {
		return fetch(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if e.version != version {
		// Invalidated while the fetch was in flight: the result no longer
		// belongs to the current generation of this entry.
		metrics.CacheStaleDropsTotal.WithLabelValues(string(key.Category)).Inc()
		s.log.Debug().Str("key", key.String()).Msg("stale fetch result dropped")
		if err != nil {
			return nil, err
		}
		return value, nil
	}
	e.value = value
	e.err = err
	e.fresh = err == nil
	return value, err
}

// Invalidate marks every entry under category stale. The next Get for any of
// those keys refetches, and in-flight fetches for them are abandoned.
func (s *Store) Invalidate(category Category) {
	s.mu.Lock()
	for key, e := range s.entries {
		if key.Category != category {
			continue
		}
		e.fresh = false
		e.version++
		s.group.Forget(key.String())
	}
	s.mu.Unlock()
	metrics.CacheInvalidationsTotal.WithLabelValues(string(category)).Inc()
}

// Peek reports the cached value without triggering a fetch.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || !e.fresh || e.err != nil {
		return nil, false
	}
	return e.value, true
}

// Err reports the error stored on the entry by the last failed fetch.
func (s *Store) Err(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e.err
	}
	return nil
}

// GetAs is the typed wrapper services use over Store.Get.
func GetAs[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: entry %s holds %T", key, v)
	}
	return t, nil
}
