package diag

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Handler receives diagnostic events.
type Handler interface {
	// HandleEvent is called for every reported event.
	HandleEvent(e *Event)
}

var (
	// defaultHandler is the global event handler.
	// It defaults to LogHandler with Verbose=false.
	defaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global event handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

// getHandler returns the current event handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an event to the global handler.
// If e.Timestamp is zero, it is set to the current time.
func Report(e *Event) {
	if e == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleEvent(e)
	}
}

// Recover is a helper for deferred panic recovery in scheduled actions.
// Usage: defer diag.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		Report(&Event{
			Op:         op,
			Kind:       KindPanic,
			Message:    fmt.Sprintf("panic: %v", r),
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
