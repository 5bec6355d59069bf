package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/aretw0/wayline/internal/logging"
	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

// DefaultCompletionTimeout bounds the wait for a handler's completion signal.
const DefaultCompletionTimeout = 3 * time.Second

// storeWriteTimeout bounds the post-batch route store write.
const storeWriteTimeout = 2 * time.Second

// Executor consumes route-change notifications and reconciles the handler
// registry against each new target route.
//
// All structural work funnels through a single serial lane (one goroutine):
// at most one navigation action is in flight system-wide, and batches from
// successive notifications are totally ordered. OnRouteChanged is safe to
// call from any goroutine and returns after enqueueing.
type Executor struct {
	registry   *Registry
	dispatcher ports.Dispatcher
	store      ports.RouteStore
	routerID   string
	timeout    time.Duration
	logger     *slog.Logger
	hooks      domain.LifecycleHooks

	mu        sync.Mutex // guards pending and lastRoute
	pending   []domain.NavigationState
	lastRoute domain.Route

	wake     chan struct{}
	quit     chan struct{}
	stopped  chan struct{}
	closed   *atomic.Bool
	inFlight *atomic.Bool
}

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithTimeout overrides the per-action completion timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithDispatcher sets the execution context for handler calls.
func WithDispatcher(d ports.Dispatcher) Option {
	return func(e *Executor) {
		e.dispatcher = d
	}
}

// WithStore configures a RouteStore that receives the committed route after
// each batch, keyed by routerID.
func WithStore(store ports.RouteStore, routerID string) Option {
	return func(e *Executor) {
		e.store = store
		e.routerID = routerID
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Executor) {
		e.hooks = hooks
	}
}

// NewExecutor creates an executor rooted at the given handler and starts its
// serial lane. The root handler manages the first route segment and is never
// removed.
func NewExecutor(root ports.Handler, opts ...Option) *Executor {
	e := &Executor{
		registry:   NewRegistry(root),
		dispatcher: ports.InlineDispatcher(),
		timeout:    DefaultCompletionTimeout,
		logger:     logging.NewNop(),
		wake:       make(chan struct{}, 1),
		quit:       make(chan struct{}),
		stopped:    make(chan struct{}),
		closed:     atomic.NewBool(false),
		inFlight:   atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(e)
	}
	go e.run()
	return e
}

// OnRouteChanged enqueues a new target state for reconciliation.
// Safe to call from any goroutine; never blocks on navigation work.
func (e *Executor) OnRouteChanged(state domain.NavigationState) {
	if e.closed.Load() {
		return
	}

	e.mu.Lock()
	e.pending = append(e.pending, state)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
		// Lane already has a pending wakeup.
	}
}

// CurrentRoute returns the last committed route. Best-effort: a batch may be
// mid-flight.
func (e *Executor) CurrentRoute() domain.Route {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastRoute.Clone()
}

// Depth returns the number of route segments currently materialized in the
// registry. Best-effort, see CurrentRoute.
func (e *Executor) Depth() int {
	return e.registry.Depth()
}

// InFlight reports whether the lane is currently applying a batch.
// A router is idle exactly when InFlight is false and QueueLen is zero.
func (e *Executor) InFlight() bool {
	return e.inFlight.Load()
}

// QueueLen returns the number of target states waiting for the lane.
func (e *Executor) QueueLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Close stops the serial lane after the action currently in flight resolves.
// Pending states that have not started are discarded.
func (e *Executor) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	close(e.quit)
	<-e.stopped
	return nil
}

// run is the serial lane. It drains pending states in arrival order, one
// batch at a time.
func (e *Executor) run() {
	defer close(e.stopped)
	for {
		select {
		case <-e.quit:
			return
		case <-e.wake:
			for {
				state, ok := e.dequeue()
				if !ok {
					break
				}
				e.apply(state)

				select {
				case <-e.quit:
					return
				default:
				}
			}
		}
	}
}

func (e *Executor) dequeue() (domain.NavigationState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return domain.NavigationState{}, false
	}
	state := e.pending[0]
	e.pending = e.pending[1:]
	// Marked busy before the lock drops so that "queue empty and not in
	// flight" reliably means idle to outside observers.
	e.inFlight.Store(true)
	return state, true
}

// apply reconciles one target state: diff, serial execution, commit.
func (e *Executor) apply(state domain.NavigationState) {
	defer e.inFlight.Store(false)

	e.mu.Lock()
	from := e.lastRoute
	e.mu.Unlock()

	actions := domain.Diff(from, state.Route)
	if len(actions) == 0 {
		// Unchanged route: nothing to navigate, nothing to commit.
		return
	}

	batchID := uuid.NewString()
	start := time.Now()
	stalls := 0

	e.logger.Debug("applying route change",
		"batch_id", batchID,
		"from", from.String(),
		"to", state.Route.String(),
		"actions", len(actions),
	)

	for _, act := range actions {
		if !e.execute(batchID, act, state.Animate) {
			stalls++
		}
	}

	e.mu.Lock()
	e.lastRoute = state.Route.Clone()
	e.mu.Unlock()

	e.persist(state.Route)

	if e.hooks.OnBatchApplied != nil {
		e.hooks.OnBatchApplied(&domain.BatchEvent{
			Timestamp: time.Now(),
			BatchID:   batchID,
			From:      from,
			To:        state.Route.Clone(),
			Actions:   len(actions),
			Stalls:    stalls,
			Duration:  time.Since(start),
		})
	}
}

// execute dispatches one action and blocks the lane until the handler signals
// completion or the timeout elapses. It returns false if the action stalled.
//
// Registry bookkeeping: a pop shrinks the registry at dispatch time; a push
// or change waits for the handler call to return the new handler reference
// and applies it immediately, so the registry is consistent for the next
// action even if the completion signal later stalls.
func (e *Executor) execute(batchID string, act domain.Action, animated bool) bool {
	responsible := e.registry.At(act.ResponsibleIndex)
	slot := act.RegistrySlot()

	done := make(chan struct{})
	var once sync.Once
	complete := func() {
		// Exactly-once contract: duplicate or late invocations are absorbed
		// here rather than surfacing to the lane.
		once.Do(func() { close(done) })
	}

	start := time.Now()
	e.emitAction(e.hooks.OnActionDispatch, batchID, act, animated, 0)

	var refc chan ports.Handler
	switch act.Kind {
	case domain.ActionPop:
		e.registry.Remove(slot)
		e.dispatcher.Dispatch(func() {
			responsible.PopSegment(act.Segment, animated, complete)
		})
	case domain.ActionPush:
		refc = make(chan ports.Handler, 1)
		e.dispatcher.Dispatch(func() {
			refc <- responsible.PushSegment(act.Segment, animated, complete)
		})
	case domain.ActionChange:
		refc = make(chan ports.Handler, 1)
		e.dispatcher.Dispatch(func() {
			refc <- responsible.ChangeSegment(act.Previous, act.Segment, animated, complete)
		})
	}

	if refc != nil {
		// The handler call returning is a plain function-call contract, not
		// part of the completion timeout.
		ref := <-refc
		if act.Kind == domain.ActionPush {
			e.registry.Insert(slot, ref)
		} else {
			e.registry.Replace(slot, ref)
		}
	}

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case <-done:
		e.emitAction(e.hooks.OnActionComplete, batchID, act, animated, time.Since(start))
		return true
	case <-timer.C:
		// A handler that never invokes its completion callback is a
		// programming error in that handler. Report it and move on; the
		// registry may now disagree with what is on screen if the callback
		// eventually fires. That hazard is accepted, not reconciled.
		e.logger.Error("navigation stalled: handler never signalled completion",
			"batch_id", batchID,
			"action", act.String(),
			"handler_index", act.ResponsibleIndex,
			"timeout", e.timeout,
		)
		e.emitAction(e.hooks.OnActionStall, batchID, act, animated, time.Since(start))
		return false
	}
}

func (e *Executor) emitAction(fn func(*domain.ActionEvent), batchID string, act domain.Action, animated bool, d time.Duration) {
	if fn == nil {
		return
	}
	fn(&domain.ActionEvent{
		Timestamp: time.Now(),
		BatchID:   batchID,
		Action:    act,
		Animated:  animated,
		Duration:  d,
	})
}

func (e *Executor) persist(route domain.Route) {
	if e.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeWriteTimeout)
	defer cancel()

	if err := e.store.Save(ctx, e.routerID, route); err != nil {
		e.logger.Warn("failed to persist committed route",
			"router_id", e.routerID,
			"route", route.String(),
			"err", err,
		)
	}
}
