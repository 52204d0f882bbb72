package engine

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned stop function cancels a run
// that has not started and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// TimerScheduler schedules on the runtime timer. Callbacks run on their own
// goroutine.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// ManualScheduler queues callbacks until Fire is called. It lets callers
// drive deferred work deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTask
}

type manualTask struct {
	delay time.Duration
	fn    func()
	done  bool
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &manualTask{delay: d, fn: fn}
	s.pending = append(s.pending, task)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if task.done {
			return false
		}
		task.done = true
		s.remove(task)
		return true
	}
}

func (s *ManualScheduler) remove(task *manualTask) {
	for i, t := range s.pending {
		if t == task {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the delays of queued callbacks in scheduling order.
func (s *ManualScheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.pending))
	for i, t := range s.pending {
		out[i] = t.delay
	}
	return out
}

// Fire runs every queued callback in scheduling order and returns how many ran.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	tasks := s.pending
	s.pending = nil
	for _, t := range tasks {
		t.done = true
	}
	s.mu.Unlock()

	for _, t := range tasks {
		t.fn()
	}
	return len(tasks)
}
