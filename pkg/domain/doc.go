/*
Package domain contains the core domain models and the route diff algorithm for Wayline.

It defines the fundamental entities of navigation reconciliation: Routes (ordered
segment paths), Actions (the structural push/pop/change steps) and the NavigationState
snapshot delivered by the embedding application's state store. This package is kept
pure and free of external dependencies like I/O or concurrency, following Hexagonal
Architecture principles.

# Key Entities

  - Segment: An opaque identifier for one navigable unit (e.g. a screen name).
  - Route: The ordered path from the root to the currently displayed leaf.
  - Action: One structural step (Push, Pop or Change) tagged with the handler
    responsible for performing it.
  - Diff: The pure function that converts an old/new route pair into the ordered
    action list transforming one into the other.
*/
package domain
