package domain

import "strings"

// Segment identifies one navigable unit within a route (e.g. a screen name).
// Segments are opaque to the router; equality is by value.
type Segment string

// Route is the ordered path from the root to the currently displayed leaf.
// Position 0 is the outermost level below the root. Order is significant.
type Route []Segment

// NewRoute builds a route from plain strings. Convenience for hosts and tests.
func NewRoute(segments ...string) Route {
	if len(segments) == 0 {
		return nil
	}
	r := make(Route, len(segments))
	for i, s := range segments {
		r[i] = Segment(s)
	}
	return r
}

// Equal reports whether both routes contain the same segments in the same order.
func (r Route) Equal(other Route) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the route.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Strings returns the route as a plain string slice (for serialization and logs).
func (r Route) Strings() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = string(s)
	}
	return out
}

// String renders the route as a path, e.g. "/home/details".
func (r Route) String() string {
	if len(r) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range r {
		b.WriteByte('/')
		b.WriteString(string(s))
	}
	return b.String()
}

// commonPrefixEnd returns the largest index k such that both routes agree at
// every position up to and including k, or -1 if they diverge immediately.
func commonPrefixEnd(old, new Route) int {
	k := -1
	for k+1 < len(old) && k+1 < len(new) && old[k+1] == new[k+1] {
		k++
	}
	return k
}
