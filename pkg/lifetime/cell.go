package lifetime

import "sync"

// Cell is the shared liveness state between an object and the weak handles
// observing it. It holds the only strong slot for the target; handles reach
// the target exclusively through the cell, never through a cached pointer.
//
// A cell is created alongside its target and invalidated exactly once when
// the target is destroyed. Invalidation is permanent: a cell never returns
// to the alive state.
//
// All methods are safe for concurrent use. The cell's mutex is what makes
// a handle's check-and-use atomic with respect to destruction: Invalidate
// and Resolve serialize on it, so a resolve that starts after invalidation
// began can only observe "gone".
type Cell[T any] struct {
	mu     sync.Mutex
	target *T
}

// NewCell creates a cell holding target as its strong slot.
// A nil target yields a cell that is already not alive.
func NewCell[T any](target *T) *Cell[T] {
	return &Cell[T]{target: target}
}

// Invalidate clears the strong slot, transitioning the cell to not-alive.
// It returns true only on the call that performed the transition; later
// calls are no-ops returning false. The destruction protocol relies on
// this: invalidate the cell first, then release the owning reference.
func (c *Cell[T]) Invalidate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil {
		return false
	}
	c.target = nil
	return true
}

// resolve returns the target and true if the cell is still alive.
// Handles call this under no lock of their own; the cell mutex alone
// orders the check against Invalidate.
func (c *Cell[T]) resolve() (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil {
		return nil, false
	}
	return c.target, true
}
