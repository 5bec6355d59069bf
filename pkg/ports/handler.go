package ports

import "github.com/aretw0/wayline/pkg/domain"

// CompletionFunc signals that a handler finished its transition.
//
// Handlers must invoke it exactly once per transition, from any goroutine.
// The router tolerates duplicate or late invocations, but a transition whose
// completion never fires is reported as a stalled navigation.
type CompletionFunc func()

// Handler is the capability contract each registered navigation handler must
// satisfy. A handler is responsible for performing transitions for the
// segment directly below it; the root handler of a router manages the first
// route segment.
//
// Concrete handlers are supplied by the embedding application (view
// controllers, window stacks, TUI screens) and are out of the router's scope.
type Handler interface {
	// PushSegment performs a push transition for segment and returns the
	// handler that will manage segments below the newly active one.
	PushSegment(segment domain.Segment, animated bool, completion CompletionFunc) Handler

	// PopSegment performs a pop transition removing segment.
	PopSegment(segment domain.Segment, animated bool, completion CompletionFunc)

	// ChangeSegment replaces from with to as a single transition and returns
	// the handler for the newly active segment.
	ChangeSegment(from, to domain.Segment, animated bool, completion CompletionFunc) Handler
}
