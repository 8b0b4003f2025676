package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Cron schedules jobs on a robfig/cron engine in a fixed location.
type Cron struct {
	cron *cron.Cron
}

func NewCron(loc *time.Location, logger *slog.Logger) *Cron {
	if loc == nil {
		loc = time.Local
	}
	l := cronLogger{logger: logger}
	return &Cron{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(l),
			cron.WithChain(cron.Recover(l)),
		),
	}
}

func (c *Cron) Schedule(name, spec string, fn func()) (*Job, error) {
	job := newJob(name, fn)
	id, err := c.cron.AddFunc(spec, job.run)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	job.setRemove(func() { c.cron.Remove(id) })
	return job, nil
}

func (c *Cron) Start() {
	c.cron.Start()
}

// Stop halts the engine; the returned context is done once running
// callbacks have returned.
func (c *Cron) Stop() context.Context {
	return c.cron.Stop()
}

// Next reports when spec fires next after t, in t's location.
func Next(spec string, t time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Next(t), nil
}

// cronLogger routes the engine's logging through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log().Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log().Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}

func (l cronLogger) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}
