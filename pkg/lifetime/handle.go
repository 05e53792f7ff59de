package lifetime

// Handle is a non-owning reference to a T guarded by a [Cell].
//
// A Handle never keeps its target alive and never yields a stale pointer:
// after the cell is invalidated, Alive reports false and Resolve reports
// absence, permanently. Handles are plain values; copying one produces an
// equivalent handle sharing the same cell, with independent lifetime from
// both the target and the original.
//
// The zero Handle is valid and permanently not-alive.
type Handle[T any] struct {
	cell *Cell[T]
}

// Bind returns a handle observing cell. Binding to a nil cell returns a
// handle that is permanently not-alive, so callers holding an absent
// source need no special case.
func Bind[T any](cell *Cell[T]) Handle[T] {
	return Handle[T]{cell: cell}
}

// Alive reports whether the target has not been destroyed. It never
// blocks beyond the cell's short critical section.
func (h Handle[T]) Alive() bool {
	if h.cell == nil {
		return false
	}
	_, ok := h.cell.resolve()
	return ok
}

// Resolve returns an accessor to the target if it is still alive.
// The check and the handout happen under the cell mutex, so either the
// target was fully alive when Resolve ran and the accessor is valid, or
// destruction had begun and Resolve reports absence. Absence is a normal
// result, not an error.
func (h Handle[T]) Resolve() (*T, bool) {
	if h.cell == nil {
		return nil, false
	}
	return h.cell.resolve()
}
