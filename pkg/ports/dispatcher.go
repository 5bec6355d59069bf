package ports

// Dispatcher defines the execution context navigation handler calls run on.
//
// Handlers typically perform visible transitions, so hosts embed the router
// with a dispatcher that marshals onto their UI loop (main thread, event
// queue). Dispatch may return before fn has run; the router never issues a
// second Dispatch for navigation work before the previous action resolved.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatchFunc adapts a plain function to the Dispatcher interface.
type DispatchFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatchFunc) Dispatch(fn func()) {
	f(fn)
}

// InlineDispatcher runs handler calls synchronously on the router's own lane.
// Suitable for tests and headless hosts without a dedicated UI loop.
func InlineDispatcher() Dispatcher {
	return DispatchFunc(func(fn func()) {
		fn()
	})
}
