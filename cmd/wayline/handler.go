package main

import (
	"fmt"
	"io"

	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

// consoleHandler is the demo navigation handler used by the CLI: it prints
// each transition and completes immediately.
type consoleHandler struct {
	name string
	out  io.Writer
}

func newConsoleHandler(name string, out io.Writer) *consoleHandler {
	return &consoleHandler{name: name, out: out}
}

func (h *consoleHandler) PushSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	fmt.Fprintf(h.out, "  %s: push %s (animated=%v)\n", h.name, segment, animated)
	completion()
	return newConsoleHandler(string(segment), h.out)
}

func (h *consoleHandler) PopSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) {
	fmt.Fprintf(h.out, "  %s: pop %s (animated=%v)\n", h.name, segment, animated)
	completion()
}

func (h *consoleHandler) ChangeSegment(from, to domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	fmt.Fprintf(h.out, "  %s: change %s -> %s (animated=%v)\n", h.name, from, to, animated)
	completion()
	return newConsoleHandler(string(to), h.out)
}
