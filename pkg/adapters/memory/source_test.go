package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayline/pkg/adapters/memory"
	"github.com/aretw0/wayline/pkg/domain"
)

type stateCollector struct {
	mu     sync.Mutex
	states []domain.NavigationState
}

func (c *stateCollector) collect(state domain.NavigationState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = append(c.states, state)
}

func (c *stateCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.states)
}

func (c *stateCollector) routes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.states))
	for i, s := range c.states {
		out[i] = s.Route.String()
	}
	return out
}

func TestSource_DeliversPublishedStates(t *testing.T) {
	source := memory.NewSource()
	collector := &stateCollector{}

	require.NoError(t, source.Subscribe(context.Background(), collector.collect))

	source.PublishRoute(domain.NewRoute("home"))
	source.PublishRoute(domain.NewRoute("home", "details"))

	assert.Equal(t, []string{"/home", "/home/details"}, collector.routes())
}

func TestSource_ReplaysCurrentStateToNewSubscribers(t *testing.T) {
	source := memory.NewSource()
	source.PublishRoute(domain.NewRoute("home"))

	collector := &stateCollector{}
	require.NoError(t, source.Subscribe(context.Background(), collector.collect))

	assert.Equal(t, []string{"/home"}, collector.routes(), "late subscriber sees the current state")
}

func TestSource_UnsubscribesOnContextCancel(t *testing.T) {
	source := memory.NewSource()
	collector := &stateCollector{}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, source.Subscribe(ctx, collector.collect))

	source.PublishRoute(domain.NewRoute("home"))
	cancel()

	// Removal is asynchronous; publish until a delivery no longer lands.
	assert.Eventually(t, func() bool {
		before := collector.count()
		source.PublishRoute(domain.NewRoute("home", "details"))
		return collector.count() == before
	}, time.Second, 5*time.Millisecond)
}

func TestSource_FansOutToAllSubscribers(t *testing.T) {
	source := memory.NewSource()
	a := &stateCollector{}
	b := &stateCollector{}

	require.NoError(t, source.Subscribe(context.Background(), a.collect))
	require.NoError(t, source.Subscribe(context.Background(), b.collect))

	source.PublishRoute(domain.NewRoute("home"))

	assert.Equal(t, []string{"/home"}, a.routes())
	assert.Equal(t, []string{"/home"}, b.routes())
}
