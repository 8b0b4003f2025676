// Package scheduler runs recurring jobs on cron schedules and hands out
// cancellable handles for them.
package scheduler

import (
	"sync"
	"sync/atomic"
)

// State is where a job is in its lifecycle.
type State int32

const (
	StateScheduled State = iota
	StateFiring
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateFiring:
		return "firing"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Scheduler registers fn to run on spec, a standard five-field cron line.
type Scheduler interface {
	Schedule(name, spec string, fn func()) (*Job, error)
}

// Job is a handle on one recurring registration. A cancelled job never runs
// its callback again; a firing that is already underway finishes.
type Job struct {
	name  string
	fn    func()
	state atomic.Int32

	mu       sync.Mutex
	remove   func()
	canceled bool
}

func newJob(name string, fn func()) *Job {
	return &Job{name: name, fn: fn}
}

func (j *Job) Name() string {
	return j.name
}

func (j *Job) State() State {
	return State(j.state.Load())
}

// run is the tick callback. Overlapping ticks of the same job are dropped.
func (j *Job) run() {
	if !j.state.CompareAndSwap(int32(StateScheduled), int32(StateFiring)) {
		return
	}
	defer j.state.CompareAndSwap(int32(StateFiring), int32(StateScheduled))
	j.fn()
}

func (j *Job) setRemove(remove func()) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.canceled {
		remove()
		return
	}
	j.remove = remove
}

// Cancel stops future firings. It is safe to call more than once and from
// inside the job's own callback.
func (j *Job) Cancel() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.canceled {
		return
	}
	j.canceled = true
	j.state.Store(int32(StateCancelled))
	if j.remove != nil {
		j.remove()
	}
}
