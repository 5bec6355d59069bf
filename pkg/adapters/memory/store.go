package memory

import (
	"context"
	"sync"

	"github.com/aretw0/wayline/pkg/domain"
)

// Store implements ports.RouteStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Route
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Route),
	}
}

// Save persists the route in memory.
func (s *Store) Save(ctx context.Context, routerID string, route domain.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy to ensure isolation, similar to serialization.
	s.data[routerID] = route.Clone()
	return nil
}

// Load retrieves the route from memory.
func (s *Store) Load(ctx context.Context, routerID string) (domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	route, ok := s.data[routerID]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	return route.Clone(), nil
}

// Delete removes the route.
func (s *Store) Delete(ctx context.Context, routerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, routerID)
	return nil
}

// List returns router IDs with a committed route.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routers := make([]string, 0, len(s.data))
	for id := range s.data {
		routers = append(routers, id)
	}
	return routers, nil
}
