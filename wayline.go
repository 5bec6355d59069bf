package wayline

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/wayline/internal/runtime"
	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

// Router is the high-level entry point for the Wayline library.
// It wraps the internal executor and provides a simplified API for hosts.
type Router struct {
	exec        *runtime.Executor
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Router.
type Option func(*Router)

// WithTimeout overrides the per-action completion timeout (default 3s).
func WithTimeout(timeout time.Duration) Option {
	return func(r *Router) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithTimeout(timeout))
	}
}

// WithDispatcher sets the execution context handler calls run on, typically a
// bridge to the host's UI loop. Defaults to inline dispatch.
func WithDispatcher(d ports.Dispatcher) Option {
	return func(r *Router) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithDispatcher(d))
	}
}

// WithStore records the committed route in the given store after each batch,
// keyed by routerID.
func WithStore(store ports.RouteStore, routerID string) Option {
	return func(r *Router) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithStore(store, routerID))
	}
}

// WithLogger sets a custom structured logger for the router.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithLogger(logger))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Router) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithHooks(hooks))
	}
}

// New creates a router rooted at the given handler and starts its serial
// execution lane. The root handler manages the first route segment.
func New(root ports.Handler, opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	r.exec = runtime.NewExecutor(root, r.runtimeOpts...)
	return r
}

// OnRouteChanged hands a new target state to the router. Safe to call from
// any goroutine; returns immediately after enqueueing.
func (r *Router) OnRouteChanged(state domain.NavigationState) {
	r.exec.OnRouteChanged(state)
}

// Bind subscribes the router to a state source until ctx is cancelled.
func (r *Router) Bind(ctx context.Context, source ports.StateSource) error {
	return source.Subscribe(ctx, r.OnRouteChanged)
}

// CurrentRoute returns the last committed route. Best-effort: a batch may be
// mid-flight when read from outside the lane.
func (r *Router) CurrentRoute() domain.Route {
	return r.exec.CurrentRoute()
}

// Depth returns the number of route segments currently materialized.
func (r *Router) Depth() int {
	return r.exec.Depth()
}

// InFlight reports whether the router is currently applying a batch.
// The router is idle exactly when InFlight is false and QueueLen is zero.
func (r *Router) InFlight() bool {
	return r.exec.InFlight()
}

// QueueLen returns the number of target states waiting for the lane.
func (r *Router) QueueLen() int {
	return r.exec.QueueLen()
}

// Close stops the router's serial lane after the in-flight action resolves.
func (r *Router) Close() error {
	return r.exec.Close()
}
