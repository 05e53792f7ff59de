package selfdestruct_test

import (
	"fmt"
	"time"

	"github.com/go-drift/weakref/pkg/scheduler"
	"github.com/go-drift/weakref/pkg/selfdestruct"
)

// This example mirrors the demo: an object schedules its own deletion,
// and a weak handle observes it safely before and after.
func Example() {
	sched := scheduler.NewManual()
	obj := selfdestruct.NewWithMaxDelay("Self Destructing Object", sched, 3*time.Second)
	h := obj.Weak()

	if label, ok := selfdestruct.Access(h); ok {
		fmt.Println("Name:", label)
	}

	// In production the delay elapses on its own; tests advance it.
	sched.Advance(3 * time.Second)

	if _, ok := selfdestruct.Access(h); !ok {
		fmt.Println("Object has been deleted")
	}

	// Output:
	// Name: Self Destructing Object
	// Object has been deleted
}
