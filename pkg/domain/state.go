package domain

// NavigationState is the snapshot the embedding application's state store
// publishes whenever the target route changes. It is immutable once observed.
type NavigationState struct {
	// Route is the full target route.
	Route Route `json:"route"`

	// Animate indicates whether handlers should animate the transitions
	// produced for this state.
	Animate bool `json:"animate"`
}

// NewNavigationState builds an animated navigation state for the given route.
func NewNavigationState(route Route) NavigationState {
	return NavigationState{Route: route, Animate: true}
}
