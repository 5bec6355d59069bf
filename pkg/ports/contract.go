package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayline/pkg/domain"
)

// RunRouteStoreContract runs a suite of tests to verify that a RouteStore
// implementation adheres to the defined interface contract.
func RunRouteStoreContract(t *testing.T, store RouteStore) {
	ctx := context.Background()
	routerID := "contract-test-router-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		route := domain.NewRoute("home", "details", "help")

		err := store.Save(ctx, routerID, route)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, routerID)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, route.Equal(loaded), "loaded route should match saved route")
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, routerID, domain.NewRoute("home")))
		require.NoError(t, store.Save(ctx, routerID, domain.NewRoute("home", "settings")))

		loaded, err := store.Load(ctx, routerID)
		require.NoError(t, err)
		assert.True(t, domain.NewRoute("home", "settings").Equal(loaded))
	})

	t.Run("Save Empty Route", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, routerID, nil))

		loaded, err := store.Load(ctx, routerID)
		require.NoError(t, err)
		assert.Len(t, loaded, 0, "empty route should round-trip as empty")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+routerID)
		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, routerID, domain.NewRoute("home")))

		err := store.Delete(ctx, routerID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, routerID)
		assert.ErrorIs(t, err, domain.ErrRouteNotFound, "Load after Delete should return ErrRouteNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := routerID + "-1"
		id2 := routerID + "-2"
		_ = store.Save(ctx, id1, domain.NewRoute("home"))
		_ = store.Save(ctx, id2, domain.NewRoute("home", "details"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		routers, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, routers, id1)
		assert.Contains(t, routers, id2)
	})
}
