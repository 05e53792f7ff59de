// Package scheduler provides one-shot delayed action scheduling.
//
// The [Scheduler] interface is the single capability objects need to
// schedule their own teardown: run an action exactly once after a delay.
// Production code uses [Timer]; tests inject [Manual] to fire actions
// deterministically instead of waiting on real time.
package scheduler

import "time"

// Scheduler runs a zero-argument action exactly once after a delay.
//
// Implementations must not run the action more than once and must not drop
// it. There is no cancellation: once scheduled, the action will fire.
type Scheduler interface {
	AfterDelay(d time.Duration, action func())
}

// Timer is a Scheduler backed by the runtime timer heap.
//
// If Dispatch is set, each action is handed to it when due instead of
// running on the timer goroutine. This is how actions are funneled onto a
// UI thread:
//
//	sched := scheduler.Timer{Dispatch: fyne.Do}
type Timer struct {
	// Dispatch, if non-nil, receives each due action for execution.
	Dispatch func(func())
}

// AfterDelay schedules action to run once after d. A nil action is ignored.
func (t Timer) AfterDelay(d time.Duration, action func()) {
	if action == nil {
		return
	}
	dispatch := t.Dispatch
	time.AfterFunc(d, func() {
		if dispatch != nil {
			dispatch(action)
			return
		}
		action()
	})
}
