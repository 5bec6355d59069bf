package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayline/pkg/adapters/redis"
	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

func setupClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(setupClient(t))
	ports.RunRouteStoreContract(t, store)
}

func TestRedisStore_PrefixIsolatesStores(t *testing.T) {
	ctx := context.Background()
	client := setupClient(t)

	a := redis.NewFromClient(client, redis.WithPrefix("app-a:"))
	b := redis.NewFromClient(client, redis.WithPrefix("app-b:"))

	require.NoError(t, a.Save(ctx, "router", domain.NewRoute("home")))

	_, err := b.Load(ctx, "router")
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)

	ids, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_TTLExpiresEntries(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redis.NewFromClient(client, redis.WithTTL(time.Second))
	require.NoError(t, store.Save(ctx, "router", domain.NewRoute("home")))

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "router")
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)
}
