/*
Package ports defines the ports (interfaces) connecting the Wayline router to its
collaborators.

These interfaces decouple the core reconciliation logic from the embedding
application, allowing the router to work with any state-management store, any
UI toolkit and any persistence backend.

# Key Interfaces

  - Handler: The capability contract a navigation handler must satisfy
    (perform push/pop/change transitions and signal completion).
  - Dispatcher: The execution context handler calls are marshalled onto
    (typically a UI main loop).
  - StateSource: Delivers NavigationState values to the router.
  - RouteStore: Persists the last committed route per router instance.
*/
package ports
