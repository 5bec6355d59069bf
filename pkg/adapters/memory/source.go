package memory

import (
	"context"
	"sync"

	"github.com/aretw0/wayline/pkg/domain"
)

// Source implements ports.StateSource in memory.
//
// It replays the most recent state to new subscribers and fans every
// published state out to all active subscriptions, from the publisher's
// goroutine. Routers tolerate that.
type Source struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(domain.NavigationState)
	current *domain.NavigationState
}

// NewSource creates a new in-memory state source.
func NewSource() *Source {
	return &Source{subs: make(map[int]func(domain.NavigationState))}
}

// Subscribe registers fn until ctx is cancelled. If a state has already been
// published, fn receives it immediately.
func (s *Source) Subscribe(ctx context.Context, fn func(domain.NavigationState)) error {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	if current != nil {
		fn(*current)
	}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}()

	return nil
}

// Publish delivers a new state to every subscriber.
func (s *Source) Publish(state domain.NavigationState) {
	s.mu.Lock()
	s.current = &state
	fns := make([]func(domain.NavigationState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// PublishRoute is shorthand for publishing an animated state for route.
func (s *Source) PublishRoute(route domain.Route) {
	s.Publish(domain.NewNavigationState(route))
}
