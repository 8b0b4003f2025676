package reminder

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/notify"
	"github.com/millersjournal/journal/internal/repository"
	"github.com/millersjournal/journal/internal/scheduler"
)

type JobsConfig struct {
	Spec     string
	Language language.Tag
	// OnClick is attached to every notification; it opens the calendar.
	OnClick func()
	Today   func() string
}

// Jobs owns the notification job of every goal that needs reminding.
type Jobs struct {
	mu   sync.Mutex
	jobs map[int64]*scheduler.Job

	sched    scheduler.Scheduler
	store    Store
	notifier notify.Notifier
	spec     string
	lang     language.Tag
	onClick  func()
	today    func() string
}

func NewJobs(sched scheduler.Scheduler, store Store, notifier notify.Notifier, cfg JobsConfig) *Jobs {
	if cfg.Spec == "" {
		cfg.Spec = HourlySpec
	}
	if cfg.Today == nil {
		cfg.Today = Today(nil, nil)
	}
	return &Jobs{
		jobs:     make(map[int64]*scheduler.Job),
		sched:    sched,
		store:    store,
		notifier: notifier,
		spec:     cfg.Spec,
		lang:     cfg.Language,
		onClick:  cfg.OnClick,
		today:    cfg.Today,
	}
}

func jobName(goalID int64) string {
	return fmt.Sprintf("goal-reminder:%d", goalID)
}

// Register installs the goal's hourly job. An existing job for the goal is
// cancelled first, under the same lock, so two never run side by side.
func (j *Jobs) Register(goalID int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if old, ok := j.jobs[goalID]; ok {
		old.Cancel()
		delete(j.jobs, goalID)
	}

	var job *scheduler.Job
	job, err := j.sched.Schedule(jobName(goalID), j.spec, func() {
		j.mu.Lock()
		self := job
		j.mu.Unlock()
		j.fire(goalID, self)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder for goal %d: %w", goalID, err)
	}

	j.jobs[goalID] = job
	slog.Debug("reminder job registered", "goal_id", goalID, "spec", j.spec)
	return nil
}

func (j *Jobs) Lookup(goalID int64) (*scheduler.Job, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	job, ok := j.jobs[goalID]
	return job, ok
}

// Unregister cancels the goal's job and reports whether there was one.
func (j *Jobs) Unregister(goalID int64) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	job, ok := j.jobs[goalID]
	if !ok {
		return false
	}
	job.Cancel()
	delete(j.jobs, goalID)
	return true
}

// Active lists goal ids with a live job, in ascending order.
func (j *Jobs) Active() []int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	ids := make([]int64, 0, len(j.jobs))
	for id := range j.jobs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// StopAll cancels every job; used at shutdown.
func (j *Jobs) StopAll() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for id, job := range j.jobs {
		job.Cancel()
		delete(j.jobs, id)
	}
	slog.Debug("reminder jobs stopped")
}

// fire re-derives the goal's progress from today's entry rather than
// trusting the percentage captured at registration.
func (j *Jobs) fire(goalID int64, self *scheduler.Job) {
	day := j.today()

	j.mu.Lock()
	current := j.jobs[goalID] == self
	j.mu.Unlock()
	if !current {
		self.Cancel()
		return
	}

	check, err := j.store.Progress(goalID, day)
	if errors.Is(err, repository.ErrGoalNotActive) {
		slog.Info("goal no longer active, retiring reminder", "goal_id", goalID, "day", day)
		j.retire(goalID, self, day)
		return
	}
	if err != nil {
		slog.Error("unable to check goal progress", "error", err, "goal_id", goalID)
		return
	}

	percentage := check.Percentage()
	_, err = j.store.Upsert(&model.NewReminder{DueDate: day, GoalID: goalID, GoalPercentage: percentage})
	if err != nil {
		slog.Warn("unable to refresh reminder", "error", err, "goal_id", goalID)
	}

	if check.Complete() {
		slog.Info("goal complete, retiring reminder", "goal_id", goalID, "percentage", percentage)
		j.retire(goalID, self, day)
		return
	}

	words := 0
	if check.EntryCount != nil {
		words = *check.EntryCount
	}
	n := notify.Reminder{
		Percentage:  percentage,
		WordCount:   words,
		CountTarget: check.CountTarget,
	}.Notification(j.lang, j.onClick)

	err = j.notifier.Notify(n)
	if err != nil {
		slog.Error("unable to show reminder", "error", err, "goal_id", goalID)
	}
}

// retire tears down self and marks the day's reminder inactive. A newer job
// registered for the goal in the meantime is left alone.
func (j *Jobs) retire(goalID int64, self *scheduler.Job, day string) {
	j.mu.Lock()
	if j.jobs[goalID] == self {
		delete(j.jobs, goalID)
	}
	j.mu.Unlock()
	self.Cancel()

	err := j.store.Deactivate(day, goalID)
	if err != nil && !errors.Is(err, repository.ErrReminderNotFound) {
		slog.Warn("unable to deactivate reminder", "error", err, "goal_id", goalID)
	}
}
