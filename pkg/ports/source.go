package ports

import (
	"context"

	"github.com/aretw0/wayline/pkg/domain"
)

// StateSource is the subscription port to the embedding application's
// state-management store.
//
// Subscribe must deliver the current NavigationState (if one exists) and
// every subsequent value to fn, until ctx is cancelled. No threading
// guarantee is assumed: deliveries may arrive from any goroutine, including
// concurrently. The router serializes internally.
type StateSource interface {
	Subscribe(ctx context.Context, fn func(domain.NavigationState)) error
}
