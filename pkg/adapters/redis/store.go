// Package redis provides a RouteStore backed by Redis, for observing the
// committed routes of router instances across processes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/wayline/pkg/domain"
)

// Store implements ports.RouteStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for committed route entries.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for route entries.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "wayline:route:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(routerID string) string {
	return s.prefix + routerID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the route to Redis.
func (s *Store) Save(ctx context.Context, routerID string, route domain.Route) error {
	data, err := json.Marshal(route.Strings())
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}

	pipe := s.client.Pipeline()

	// 1. Save JSON with TTL (0 = no expiration)
	pipe.Set(ctx, s.key(routerID), data, s.ttl)

	// 2. Add to index (ZSET). Score = expiry time, or far future when no TTL.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: routerID,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves the route from Redis.
func (s *Store) Load(ctx context.Context, routerID string) (domain.Route, error) {
	val, err := s.client.Get(ctx, s.key(routerID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var segments []string
	if err := json.Unmarshal([]byte(val), &segments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal route: %w", err)
	}

	return domain.NewRoute(segments...), nil
}

// Delete removes the committed route.
func (s *Store) Delete(ctx context.Context, routerID string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(routerID))
	pipe.ZRem(ctx, s.indexKey(), routerID)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the router IDs present in the index.
func (s *Store) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list from redis: %w", err)
	}
	return ids, nil
}
