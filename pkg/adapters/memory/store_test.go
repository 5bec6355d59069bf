package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayline/pkg/adapters/memory"
	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunRouteStoreContract(t, store)
}

func TestMemoryStore_IsolatesStoredRoutes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	route := domain.NewRoute("home", "details")
	require.NoError(t, store.Save(ctx, "r1", route))

	// Mutating the caller's slice must not leak into the store.
	route[0] = "hacked"

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.Segment("home"), loaded[0])

	// Nor may mutating a loaded route affect later loads.
	loaded[1] = "hacked"
	again, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.Segment("details"), again[1])
}
