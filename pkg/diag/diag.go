// Package diag provides structured diagnostics for lifecycle events.
package diag

import (
	"fmt"
	"time"
)

// Kind identifies the category of a diagnostic event.
type Kind int

const (
	// KindUnknown indicates an event of unknown type.
	KindUnknown Kind = iota
	// KindLifecycle indicates an object lifecycle transition, such as
	// self-destruction.
	KindLifecycle
	// KindSchedule indicates a scheduling event.
	KindSchedule
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindLifecycle:
		return "lifecycle"
	case KindSchedule:
		return "schedule"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Event is a structured diagnostic notification.
type Event struct {
	// Op is the operation that emitted the event (e.g., "selfdestruct.destroy").
	Op string
	// Kind categorizes the event.
	Kind Kind
	// Message is the human-readable payload.
	Message string
	// StackTrace contains the call stack, if captured.
	StackTrace string
	// Timestamp is when the event occurred.
	Timestamp time.Time
}

func (e *Event) String() string {
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, e.Message)
}
