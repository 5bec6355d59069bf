package domain

// Diff calculates the ordered list of structural actions that transforms
// oldRoute into newRoute. It is pure and deterministic: no I/O, no state.
//
// The algorithm finds the common prefix of both routes, pops everything the
// old route holds beyond the first divergence (deepest first), resolves the
// divergence point itself and then pushes the remainder of the new route.
// At the divergence point exactly one of three cases applies:
//
//  1. The old route still has a segment there and the new route does not
//     -> pop the remaining extra segment.
//  2. Both routes have a segment there and they differ
//     -> emit a single change, never a pop+push pair. Collapsing a 1-for-1
//     mismatch into one change keeps the visible transition count minimal
//     and must be preserved.
//  3. Only the new route has a segment there
//     -> nothing to undo, fall through to the pushes.
//
// Identical routes yield a nil action list.
func Diff(oldRoute, newRoute Route) []Action {
	prefix := commonPrefixEnd(oldRoute, newRoute)

	// Routes are identical: nothing to navigate.
	if len(oldRoute) == prefix+1 && len(newRoute) == prefix+1 {
		return nil
	}

	var actions []Action

	// pos tracks the deepest route position still materialized while we
	// unwind the old route. The responsible handler for the segment at
	// position p is its parent, registry slot HandlerIndex(p-1) == p.
	pos := len(oldRoute) - 1
	for pos > prefix+1 {
		actions = append(actions, PopAction(HandlerIndex(pos-1), oldRoute[pos]))
		pos--
	}

	divergence := prefix + 1
	switch {
	case len(oldRoute) > divergence && len(newRoute) <= divergence:
		// Shrink: the old route has one extra segment left.
		actions = append(actions, PopAction(HandlerIndex(divergence-1), oldRoute[divergence]))
		pos--

	case len(oldRoute) > divergence && len(newRoute) > divergence:
		// Replace: a 1-for-1 mismatch collapses to a single change.
		actions = append(actions, ChangeAction(HandlerIndex(divergence-1), oldRoute[divergence], newRoute[divergence]))
	}

	// Grow: push every remaining new segment, extending the registry one
	// slot at a time.
	for pos < len(newRoute)-1 {
		pos++
		actions = append(actions, PushAction(HandlerIndex(pos-1), newRoute[pos]))
	}

	return actions
}
