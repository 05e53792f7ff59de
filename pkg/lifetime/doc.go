// Package lifetime provides weak references to objects whose owner may
// destroy them at an unpredictable time.
//
// # Core Components
//
// The package consists of two cooperating types:
//
//   - [Cell]: the liveness cell an object creates alongside itself. It holds
//     the only strong slot for the object and is invalidated exactly once
//     when the object is destroyed.
//
//   - [Handle]: a non-owning reference bound to a Cell. Any number of
//     handles may observe one cell; each can test liveness and resolve a
//     usable accessor, or learn that the object is gone, without ever
//     touching a stale pointer.
//
// # Basic Usage
//
// An owner creates its cell at construction and invalidates it when it
// tears the object down:
//
//	type Session struct {
//	    cell *lifetime.Cell[Session]
//	}
//
//	s := &Session{}
//	s.cell = lifetime.NewCell(s)
//
//	// Observers bind handles at any point during the session's life.
//	h := lifetime.Bind(s.cell)
//
//	// Destruction: invalidate first, then drop the owning reference.
//	s.cell.Invalidate()
//
//	if sess, ok := h.Resolve(); ok {
//	    // sess is usable; the cell was fully alive when Resolve ran.
//	    _ = sess
//	}
//
// Absence is a normal value, never an error: Resolve reports it through its
// second return, and Alive answers the same question without an accessor.
package lifetime
