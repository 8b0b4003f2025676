package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// Manual is a Scheduler whose jobs only run when fired explicitly. It backs
// tests and one-shot commands that must not start real timers.
type Manual struct {
	mu   sync.Mutex
	jobs []*Job
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(name, spec string, fn func()) (*Job, error) {
	_, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}

	job := newJob(name, fn)
	m.mu.Lock()
	m.jobs = append(m.jobs, job)
	m.mu.Unlock()

	job.setRemove(func() { m.drop(job) })
	return job, nil
}

func (m *Manual) drop(job *Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, j := range m.jobs {
		if j == job {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return
		}
	}
}

// Fire runs every live job called name once and reports how many ran.
func (m *Manual) Fire(name string) int {
	fired := 0
	for _, j := range m.live(name) {
		j.run()
		fired++
	}
	return fired
}

// Live counts the jobs called name that have not been cancelled.
func (m *Manual) Live(name string) int {
	return len(m.live(name))
}

func (m *Manual) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

func (m *Manual) live(name string) []*Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Job
	for _, j := range m.jobs {
		if j.Name() == name && j.State() != StateCancelled {
			out = append(out, j)
		}
	}
	return out
}
