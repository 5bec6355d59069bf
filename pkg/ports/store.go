package ports

import (
	"context"

	"github.com/aretw0/wayline/pkg/domain"
)

// RouteStore defines the interface for persisting committed routes.
//
// The router writes its last committed route here after each batch, keyed by
// router ID. Stores are observational: external tooling reads them to see
// where every router instance currently sits (debugging, fleet dashboards).
// The router never reads its own store during reconciliation.
type RouteStore interface {
	// Save persists the route for a given router ID.
	Save(ctx context.Context, routerID string, route domain.Route) error

	// Load retrieves the route for a given router ID.
	// Returns domain.ErrRouteNotFound if the router has never committed.
	Load(ctx context.Context, routerID string) (domain.Route, error)

	// Delete removes the route for a given router ID.
	Delete(ctx context.Context, routerID string) error

	// List returns the router IDs with a committed route.
	List(ctx context.Context) ([]string, error)
}
