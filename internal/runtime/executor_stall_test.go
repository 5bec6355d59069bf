package runtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayline/internal/testutils"
	"github.com/aretw0/wayline/pkg/domain"
)

// stallRecorder counts lifecycle events under a lock.
type stallRecorder struct {
	mu        sync.Mutex
	stalls    []domain.Action
	completes int
}

func (r *stallRecorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStall: func(ev *domain.ActionEvent) {
			r.mu.Lock()
			r.stalls = append(r.stalls, ev.Action)
			r.mu.Unlock()
		},
		OnActionComplete: func(ev *domain.ActionEvent) {
			r.mu.Lock()
			r.completes++
			r.mu.Unlock()
		},
	}
}

func (r *stallRecorder) snapshot() ([]domain.Action, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Action(nil), r.stalls...), r.completes
}

func TestExecutor_StalledActionIsReportedOnce(t *testing.T) {
	script := testutils.NewScript()
	script.MuteSegment("stuck")

	rec := &stallRecorder{}
	e := NewExecutor(script.Handler("root"),
		WithTimeout(30*time.Millisecond),
		WithHooks(rec.hooks()),
	)
	defer e.Close()

	e.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("stuck", "next")))
	waitIdle(t, e)

	// Both actions executed despite the first never completing.
	assert.Equal(t, []string{
		"root.push(stuck)",
		"stuck.push(next)",
	}, script.Calls())

	stalls, completes := rec.snapshot()
	require.Len(t, stalls, 1, "exactly one stall diagnostic")
	assert.Equal(t, domain.ActionPush, stalls[0].Kind)
	assert.Equal(t, domain.Segment("stuck"), stalls[0].Segment)
	assert.Equal(t, 1, completes)

	// The batch still committed.
	assert.True(t, domain.NewRoute("stuck", "next").Equal(e.CurrentRoute()))
}

func TestExecutor_StallDoesNotWedgeLaterBatches(t *testing.T) {
	script := testutils.NewScript()
	script.MuteSegment("stuck")

	rec := &stallRecorder{}
	e := NewExecutor(script.Handler("root"),
		WithTimeout(30*time.Millisecond),
		WithHooks(rec.hooks()),
	)
	defer e.Close()

	e.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("home", "stuck")))
	e.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("home", "details")))
	waitIdle(t, e)

	// The stalled change target is replaced by a later unrelated batch.
	assert.Equal(t, []string{
		"root.push(home)",
		"home.push(stuck)",
		"home.change(stuck->details)",
	}, script.Calls())
	assert.True(t, domain.NewRoute("home", "details").Equal(e.CurrentRoute()))

	stalls, _ := rec.snapshot()
	assert.Len(t, stalls, 1)
}

func TestExecutor_StallWaitsFullTimeout(t *testing.T) {
	script := testutils.NewScript()
	script.MuteSegment("stuck")

	e := NewExecutor(script.Handler("root"), WithTimeout(60*time.Millisecond))
	defer e.Close()

	start := time.Now()
	e.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("stuck")))
	waitIdle(t, e)

	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond,
		"the lane must hold the stalled action for the full ceiling")
}

func TestExecutor_LateCompletionIsAbsorbed(t *testing.T) {
	script := testutils.NewScript()
	// Completion arrives well after the timeout: the accepted hazard. The
	// lane must have moved on and the late signal must be swallowed.
	script.SetDelay(80 * time.Millisecond)

	rec := &stallRecorder{}
	e := NewExecutor(script.Handler("root"),
		WithTimeout(20*time.Millisecond),
		WithHooks(rec.hooks()),
	)
	defer e.Close()

	e.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("home")))
	waitIdle(t, e)

	stalls, completes := rec.snapshot()
	assert.Len(t, stalls, 1)
	assert.Equal(t, 0, completes)

	// Give the late completion time to fire; nothing further may happen.
	time.Sleep(120 * time.Millisecond)
	_, completes = rec.snapshot()
	assert.Equal(t, 0, completes, "late completion must not produce events")
	assert.Equal(t, []string{"root.push(home)"}, script.Calls())
}
