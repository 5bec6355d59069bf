package testutils

import (
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

// Script drives a tree of recording handlers and collects the global order of
// handler calls, which is what most executor tests assert on.
//
// Handlers created from one Script share its configuration: a completion
// delay, and a set of muted segments whose transitions never signal
// completion (for stall tests).
type Script struct {
	mu            sync.Mutex
	calls         []string
	completeAfter time.Duration
	mute          map[domain.Segment]bool
}

// NewScript creates a script whose handlers complete synchronously.
func NewScript() *Script {
	return &Script{mute: make(map[domain.Segment]bool)}
}

// SetDelay makes every subsequent completion fire asynchronously after d.
func (s *Script) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completeAfter = d
}

// MuteSegment suppresses the completion signal for any transition that
// activates or removes the given segment.
func (s *Script) MuteSegment(seg domain.Segment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mute[seg] = true
}

// Calls returns a snapshot of the recorded handler calls in global order.
func (s *Script) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded handler calls.
func (s *Script) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Handler creates a recording handler with the given name. Handlers returned
// from pushes and changes are named after their segment.
func (s *Script) Handler(name string) ports.Handler {
	return &recordingHandler{name: name, script: s}
}

func (s *Script) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *Script) settings(seg domain.Segment) (muted bool, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mute[seg], s.completeAfter
}

func (s *Script) finish(seg domain.Segment, completion ports.CompletionFunc) {
	muted, delay := s.settings(seg)
	if muted {
		return
	}
	if delay == 0 {
		completion()
		return
	}
	time.AfterFunc(delay, completion)
}

type recordingHandler struct {
	name   string
	script *Script
}

func (h *recordingHandler) PushSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	h.script.record(fmt.Sprintf("%s.push(%s)", h.name, segment))
	h.script.finish(segment, completion)
	return h.script.Handler(string(segment))
}

func (h *recordingHandler) PopSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) {
	h.script.record(fmt.Sprintf("%s.pop(%s)", h.name, segment))
	h.script.finish(segment, completion)
}

func (h *recordingHandler) ChangeSegment(from, to domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	h.script.record(fmt.Sprintf("%s.change(%s->%s)", h.name, from, to))
	h.script.finish(to, completion)
	return h.script.Handler(string(to))
}
