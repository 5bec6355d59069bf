package domain

import "errors"

// ErrRouteNotFound is returned when a router ID cannot be found in a route store.
var ErrRouteNotFound = errors.New("route not found")
