/*
Package wayline is a navigation reconciliation engine for state-driven applications.

It computes the minimal ordered sequence of structural navigation steps (push, pop,
change) that moves the currently displayed route to a new target route, and executes
those steps against the application's navigation handlers one at a time, waiting for
each handler to signal completion before proceeding.

# Concept

Wayline treats navigation as state reconciliation. The embedding application ("Host")
owns a state store that publishes the target route; Wayline owns the diffing and the
serialized execution. Handlers (typically view controller stacks or window managers)
implement a small capability contract and stay entirely on the host side. This
Hexagonal Architecture allows Wayline to drive any UI toolkit without knowing how a
transition is animated or rendered.

# Key Properties

  - Minimal transitions: a one-for-one segment mismatch becomes a single change,
    never a pop followed by a push.
  - Strict serialization: at most one navigation action is in flight system-wide,
    even when route updates arrive concurrently.
  - Bounded waits: a handler that never signals completion stalls its own action
    for a bounded timeout (3s by default), is reported, and the router moves on.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/wayline"
		"github.com/aretw0/wayline/pkg/adapters/memory"
		"github.com/aretw0/wayline/pkg/domain"
	)

	func main() {
		router := wayline.New(newRootHandler())
		defer router.Close()

		source := memory.NewSource()
		if err := router.Bind(context.Background(), source); err != nil {
			log.Fatal(err)
		}

		// Elsewhere in the host: publish target routes as state changes.
		source.Publish(domain.NewNavigationState(domain.NewRoute("home", "details")))
	}

The router subscribes to the source and reconciles every published route against the
handlers registered so far, growing and shrinking its internal handler registry as
pushes and pops complete.
*/
package wayline
