package service

import (
	"sync"
)

// eventLocks serializes mutating operations per event id. Every
// read-check-write on an event aggregate (capacity checks, status
// transitions, attendance writes, finalization) runs under the event's
// mutex, which is what makes the capacity invariant hold under concurrent
// approvals.
type eventLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newEventLocks() *eventLocks {
	return &eventLocks{locks: make(map[uint]*sync.Mutex)}
}

// acquire locks the mutex for eventID and returns the unlock function.
func (l *eventLocks) acquire(eventID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[eventID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
