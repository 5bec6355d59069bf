package domain

import "fmt"

// ActionKind discriminates the three structural navigation steps.
type ActionKind string

const (
	// ActionPush inserts a new segment below the responsible handler.
	ActionPush ActionKind = "push"

	// ActionPop removes the segment directly below the responsible handler.
	ActionPop ActionKind = "pop"

	// ActionChange replaces the segment directly below the responsible handler
	// with a different one, as a single visible transition.
	ActionChange ActionKind = "change"
)

// HandlerIndex maps a route position to its registry slot.
//
// The registry always holds one root handler at slot 0 that has no route
// segment of its own, so the handler for the segment at route position p
// lives at slot p+1. Every piece of index arithmetic in the router goes
// through this helper.
func HandlerIndex(position int) int {
	return position + 1
}

// Action is one structural navigation step produced by Diff.
//
// ResponsibleIndex is the registry slot of the handler that performs the
// transition: the parent of the affected segment (slot 0 is the root). For a
// segment at route position p that is always slot p. The registry slot that
// the action mutates is RegistrySlot, one below the responsible handler.
type Action struct {
	Kind             ActionKind
	ResponsibleIndex int

	// Segment is the segment being pushed or popped; for a change it is the
	// segment that becomes active.
	Segment Segment

	// Previous is only set for a change: the segment being replaced.
	Previous Segment
}

// PushAction builds a push of segment below the handler at responsibleIndex.
func PushAction(responsibleIndex int, segment Segment) Action {
	return Action{Kind: ActionPush, ResponsibleIndex: responsibleIndex, Segment: segment}
}

// PopAction builds a pop of segment, a child of the handler at responsibleIndex.
func PopAction(responsibleIndex int, segment Segment) Action {
	return Action{Kind: ActionPop, ResponsibleIndex: responsibleIndex, Segment: segment}
}

// ChangeAction builds a replacement of from by to below the handler at responsibleIndex.
func ChangeAction(responsibleIndex int, from, to Segment) Action {
	return Action{Kind: ActionChange, ResponsibleIndex: responsibleIndex, Segment: to, Previous: from}
}

// RegistrySlot returns the registry slot this action mutates: the slot of the
// affected segment's own handler, directly below the responsible handler.
func (a Action) RegistrySlot() int {
	return a.ResponsibleIndex + 1
}

// String renders the action for logs and diagnostics.
func (a Action) String() string {
	switch a.Kind {
	case ActionChange:
		return fmt.Sprintf("change(%d, %s -> %s)", a.ResponsibleIndex, a.Previous, a.Segment)
	default:
		return fmt.Sprintf("%s(%d, %s)", a.Kind, a.ResponsibleIndex, a.Segment)
	}
}
