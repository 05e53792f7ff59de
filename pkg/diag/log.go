package diag

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that writes events to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleEvent logs an event to stderr.
func (h *LogHandler) HandleEvent(e *Event) {
	if e == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[weakref %s] %s: %s\n", e.Kind, e.Op, e.Message)
		if e.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", e.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[weakref] %s: %s\n", e.Op, e.Message)
	}
}
