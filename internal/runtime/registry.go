package runtime

import (
	"fmt"
	"sync"

	"github.com/aretw0/wayline/pkg/ports"
)

// Registry is the ordered list of active navigation handlers.
//
// Slot 0 always holds the root handler, which has no route segment of its
// own; the handler for the segment at route position p lives at slot p+1
// (domain.HandlerIndex). For a committed route of length N the registry holds
// exactly N+1 handlers.
//
// All mutations happen on the executor's serial lane. The internal lock only
// exists so that introspection reads (depth, diagnostics) from other
// goroutines see a consistent slice; such reads are best-effort by design.
type Registry struct {
	mu       sync.RWMutex
	handlers []ports.Handler
}

// NewRegistry creates a registry holding only the root handler.
func NewRegistry(root ports.Handler) *Registry {
	return &Registry{handlers: []ports.Handler{root}}
}

// Len returns the number of registered handlers, including the root.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Depth returns the number of route segments currently materialized.
func (r *Registry) Depth() int {
	return r.Len() - 1
}

// At returns the handler at the given slot.
// An out-of-range slot means the diff engine produced an action referencing a
// handler that does not exist; that is a defect in the algorithm, not an
// external failure, so it faults immediately.
func (r *Registry) At(slot int) ports.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.check(slot)
	return r.handlers[slot]
}

// Insert places h at the given slot, shifting deeper handlers down.
// A push always inserts at the current end, but Insert keeps the general
// form so the invariant check covers every mutation path.
func (r *Registry) Insert(slot int, h ports.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot > len(r.handlers) {
		panic(fmt.Sprintf("wayline: registry slot %d out of range for insert (size %d)", slot, len(r.handlers)))
	}
	r.handlers = append(r.handlers, nil)
	copy(r.handlers[slot+1:], r.handlers[slot:])
	r.handlers[slot] = h
}

// Remove deletes the handler at the given slot.
func (r *Registry) Remove(slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.check(slot)
	if slot == 0 {
		panic("wayline: attempt to remove the root handler")
	}
	r.handlers = append(r.handlers[:slot], r.handlers[slot+1:]...)
}

// Replace swaps the handler at the given slot for h.
func (r *Registry) Replace(slot int, h ports.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.check(slot)
	r.handlers[slot] = h
}

func (r *Registry) check(slot int) {
	if slot < 0 || slot >= len(r.handlers) {
		panic(fmt.Sprintf("wayline: registry slot %d out of range (size %d)", slot, len(r.handlers)))
	}
}
