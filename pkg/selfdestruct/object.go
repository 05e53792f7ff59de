// Package selfdestruct implements an object that schedules its own
// destruction and is safely observable through weak handles.
//
// An [Object] owns itself: construction schedules a one-shot action after a
// random delay, and only that action destroys the object. No other code may
// tear it down. External code observes the object through
// [lifetime.Handle] values obtained from [Object.Weak]; once destruction
// has begun, every handle reports absence.
//
// The scheduler is an injected capability, so tests drive destruction
// deterministically with [scheduler.Manual] instead of waiting on real
// delays.
package selfdestruct

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/weakref/pkg/diag"
	"github.com/go-drift/weakref/pkg/lifetime"
	"github.com/go-drift/weakref/pkg/scheduler"
)

// DefaultMaxDelay is the default upper bound for the self-destruction
// delay. The actual delay is drawn uniformly from [0, max).
const DefaultMaxDelay = 3000 * time.Millisecond

var (
	liveMu  sync.Mutex
	liveSet = make(map[*Object]struct{})

	nextID atomic.Uint64
)

// Object is a self-destructing entity with a display label.
//
// Objects must be created with [New] or [NewWithMaxDelay]. Holding a raw
// *Object past its destruction is the unchecked baseline: the pointer stays
// dereferenceable but its data is stale and it can no longer tell that the
// object is gone. Use [Object.Weak] for lifetime-safe access.
type Object struct {
	id   uint64
	cell *lifetime.Cell[Object]

	mu    sync.Mutex
	label string
}

// New creates an object and schedules its destruction after a delay drawn
// uniformly from [0, DefaultMaxDelay).
func New(label string, sched scheduler.Scheduler) *Object {
	return NewWithMaxDelay(label, sched, DefaultMaxDelay)
}

// NewWithMaxDelay is like New with an explicit delay upper bound.
// A max of zero or less schedules destruction with no delay (it still runs
// through sched, never synchronously inside NewWithMaxDelay). A nil
// scheduler skips scheduling entirely, leaving the object alive until
// process exit; the demo and tests always pass one.
func NewWithMaxDelay(label string, sched scheduler.Scheduler, max time.Duration) *Object {
	o := &Object{
		id:    nextID.Add(1),
		label: label,
	}
	o.cell = lifetime.NewCell(o)

	liveMu.Lock()
	liveSet[o] = struct{}{}
	liveMu.Unlock()

	if sched != nil {
		var delay time.Duration
		if max > 0 {
			delay = rand.N(max)
		}
		sched.AfterDelay(delay, func() {
			defer diag.Recover("selfdestruct.destroy")
			o.destroy()
		})
	}
	return o
}

// ID returns the object's stable identity.
func (o *Object) ID() uint64 { return o.id }

// Label returns the current display label.
//
// Label performs no liveness check. Callers must have confirmed liveness
// through a weak handle (use [Access]) or hold the object during
// synchronous construction; reading through a stale pointer returns stale
// data.
func (o *Object) Label() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.label
}

// SetLabel replaces the display label.
func (o *Object) SetLabel(label string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.label = label
}

// Weak returns a weak handle observing this object. Any number of handles
// may be bound; all of them observe the same liveness cell. Calling Weak
// on a nil object returns a permanently not-alive handle.
func (o *Object) Weak() lifetime.Handle[Object] {
	if o == nil {
		return lifetime.Handle[Object]{}
	}
	return lifetime.Bind(o.cell)
}

// destroy runs the destruction protocol: invalidate the liveness cell
// first, then release the owning registry slot, then emit the deletion
// diagnostic. Only the scheduled action calls destroy, and the cell makes
// it a no-op on any call after the first.
func (o *Object) destroy() {
	if !o.cell.Invalidate() {
		return
	}

	liveMu.Lock()
	delete(liveSet, o)
	liveMu.Unlock()

	diag.Report(&diag.Event{
		Op:      "selfdestruct.destroy",
		Kind:    diag.KindLifecycle,
		Message: "deleted object " + o.Label(),
	})
}

// Access resolves h and reads the label in one step, returning the
// {label, present} outcome the UI layer displays. After destruction it
// returns ("", false); absence is a normal value, not an error.
func Access(h lifetime.Handle[Object]) (string, bool) {
	o, ok := h.Resolve()
	if !ok {
		return "", false
	}
	return o.Label(), true
}

// LiveCount returns the number of objects created and not yet destroyed.
// It is the leak-detector counterpart of the deletion diagnostic: a test
// that expects everything torn down can assert the count returned to its
// starting value.
func LiveCount() int {
	liveMu.Lock()
	defer liveMu.Unlock()
	return len(liveSet)
}
