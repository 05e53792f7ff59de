package lifetime_test

import (
	"sync"
	"testing"

	"github.com/go-drift/weakref/pkg/lifetime"
)

type target struct {
	name string
}

func TestHandle_AliveAfterConstruction(t *testing.T) {
	obj := &target{name: "a"}
	cell := lifetime.NewCell(obj)

	h := lifetime.Bind(cell)
	if !h.Alive() {
		t.Error("expected handle bound to a fresh cell to be alive")
	}

	got, ok := h.Resolve()
	if !ok {
		t.Fatal("expected Resolve to succeed on a live cell")
	}
	if got != obj {
		t.Errorf("Resolve returned %p, want %p", got, obj)
	}
}

func TestHandle_AbsentAfterInvalidate(t *testing.T) {
	cell := lifetime.NewCell(&target{name: "a"})
	h := lifetime.Bind(cell)

	if !cell.Invalidate() {
		t.Fatal("expected first Invalidate to report the transition")
	}

	if h.Alive() {
		t.Error("expected handle to be not-alive after invalidation")
	}
	if got, ok := h.Resolve(); ok || got != nil {
		t.Errorf("Resolve after invalidation = (%v, %v), want (nil, false)", got, ok)
	}

	// No resurrection: the answer is permanent.
	for i := 0; i < 3; i++ {
		if h.Alive() {
			t.Fatal("handle came back alive after invalidation")
		}
	}
}

func TestBind_NilCell(t *testing.T) {
	h := lifetime.Bind[target](nil)
	if h.Alive() {
		t.Error("expected handle bound to nil cell to be not-alive")
	}
	if _, ok := h.Resolve(); ok {
		t.Error("expected Resolve on nil-cell handle to report absence")
	}
}

func TestHandle_ZeroValue(t *testing.T) {
	var h lifetime.Handle[target]
	if h.Alive() {
		t.Error("expected zero handle to be not-alive")
	}
	if _, ok := h.Resolve(); ok {
		t.Error("expected Resolve on zero handle to report absence")
	}
}

func TestHandle_CopySharesLiveness(t *testing.T) {
	cell := lifetime.NewCell(&target{name: "a"})
	original := lifetime.Bind(cell)
	copied := original

	if original.Alive() != copied.Alive() {
		t.Fatal("original and copy disagree on liveness before invalidation")
	}

	cell.Invalidate()

	if original.Alive() || copied.Alive() {
		t.Error("expected both original and copy to observe invalidation")
	}
}

func TestCell_InvalidateOnce(t *testing.T) {
	cell := lifetime.NewCell(&target{name: "a"})

	if !cell.Invalidate() {
		t.Fatal("expected first Invalidate to return true")
	}
	if cell.Invalidate() {
		t.Error("expected second Invalidate to return false")
	}
}

func TestCell_NilTarget(t *testing.T) {
	cell := lifetime.NewCell[target](nil)
	h := lifetime.Bind(cell)

	if h.Alive() {
		t.Error("expected cell created with nil target to be not-alive")
	}
	if cell.Invalidate() {
		t.Error("expected Invalidate on nil-target cell to report no transition")
	}
}

// TestCell_ConcurrentInvalidate hammers one cell with concurrent
// invalidators and readers: exactly one invalidation must win, and no
// reader may observe alive again after it saw not-alive.
func TestCell_ConcurrentInvalidate(t *testing.T) {
	const invalidators = 8
	const readers = 8

	cell := lifetime.NewCell(&target{name: "contended"})
	h := lifetime.Bind(cell)

	var wg sync.WaitGroup
	var transitions sync.Map
	start := make(chan struct{})

	for i := 0; i < invalidators; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			if cell.Invalidate() {
				transitions.Store(id, true)
			}
		}(i)
	}

	sawGone := make([]bool, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			for j := 0; j < 1000; j++ {
				_, ok := h.Resolve()
				if !ok {
					sawGone[id] = true
				} else if sawGone[id] {
					t.Errorf("reader %d observed alive after not-alive", id)
					return
				}
			}
		}(i)
	}

	close(start)
	wg.Wait()

	count := 0
	transitions.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count != 1 {
		t.Errorf("expected exactly one successful invalidation, got %d", count)
	}
	if h.Alive() {
		t.Error("expected handle to be not-alive after concurrent invalidation")
	}
}
