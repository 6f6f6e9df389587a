// ABOUTME: Delayed-task scheduler with per-task cancellation.
// ABOUTME: Replaces ad hoc timer handles; Stop cancels everything on teardown.
package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler runs functions after a delay. Tasks either fire or are
// cancelled; there is no retry or persistence.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	closed bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{timers: make(map[uuid.UUID]*time.Timer)}
}

// After schedules fn to run once after d and returns a handle for Cancel.
// Scheduling on a stopped scheduler is a no-op.
func (s *Scheduler) After(d time.Duration, fn func()) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	if s.closed {
		return id
	}

	s.timers[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		fn()
	})
	return id
}

// Cancel stops a pending task. Cancelling a fired or unknown task is a no-op.
func (s *Scheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending tasks and rejects new ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
