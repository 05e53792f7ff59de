package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler under test control. Scheduled actions do not run
// until the fake clock is advanced past their due time with [Manual.Advance].
// All methods are safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []manualAction
}

type manualAction struct {
	due    time.Time
	seq    int
	action func()
}

// NewManual returns a Manual scheduler starting at a fixed epoch.
func NewManual() *Manual {
	return &Manual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// AfterDelay schedules action to run once when the fake clock reaches
// now+d. A nil action is ignored; a negative delay is treated as zero.
func (m *Manual) AfterDelay(d time.Duration, action func()) {
	if action == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, manualAction{due: m.now.Add(d), seq: m.seq, action: action})
	m.seq++
}

// Now returns the current fake time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled actions that have not yet fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d and runs every action that became
// due, in due order (scheduling order breaks ties). Each action runs
// exactly once, outside the scheduler lock, so actions may schedule
// further work; actions scheduled while firing run on a later Advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	var due []manualAction
	remaining := m.pending[:0]
	for _, a := range m.pending {
		if !a.due.After(m.now) {
			due = append(due, a)
		} else {
			remaining = append(remaining, a)
		}
	}
	m.pending = remaining
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, a := range due {
		a.action()
	}
}
