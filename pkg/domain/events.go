package domain

import "time"

// ActionEvent describes the lifecycle of a single dispatched action.
type ActionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	BatchID   string    `json:"batch_id"`
	Action    Action    `json:"action"`
	Animated  bool      `json:"animated"`

	// Duration is the time between dispatch and completion (or stall).
	// Zero on dispatch events.
	Duration time.Duration `json:"duration,omitempty"`
}

// BatchEvent describes one fully processed diff batch.
type BatchEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	BatchID   string        `json:"batch_id"`
	From      Route         `json:"from"`
	To        Route         `json:"to"`
	Actions   int           `json:"actions"`
	Stalls    int           `json:"stalls"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for router observability.
//
// Hooks are invoked from the router's serial lane; implementations must be
// fast and must not call back into the router.
type LifecycleHooks struct {
	OnActionDispatch func(*ActionEvent)
	OnActionComplete func(*ActionEvent)
	OnActionStall    func(*ActionEvent)
	OnBatchApplied   func(*BatchEvent)
}
