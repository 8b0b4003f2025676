package reminder

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/scheduler"
)

// Evaluator is the daily pass that writes reminders for incomplete goals
// and hands them to Jobs.
type Evaluator struct {
	store Store
	jobs  *Jobs
	today func() string
}

func NewEvaluator(store Store, jobs *Jobs, today func() string) *Evaluator {
	if today == nil {
		today = Today(nil, nil)
	}
	return &Evaluator{
		store: store,
		jobs:  jobs,
		today: today,
	}
}

// Run evaluates every goal active today. Failures are isolated per goal:
// the reminders that were written are returned alongside the joined errors.
func (e *Evaluator) Run() ([]*model.Reminder, error) {
	day := e.today()

	checks, err := e.store.GoalsNeedingReminder(day)
	if err != nil {
		slog.Error("unable to fetch goals for today", "error", err, "day", day)
		return nil, fmt.Errorf("failed to fetch goals for %s: %w", day, err)
	}

	reminders := []*model.Reminder{}
	var errs []error
	for _, check := range checks {
		if check.Complete() {
			continue
		}

		reminder, err := e.store.Upsert(&model.NewReminder{
			DueDate:        day,
			GoalID:         check.GoalID,
			GoalPercentage: check.Percentage(),
		})
		if err != nil {
			slog.Error("unable to set reminder", "error", err, "goal_id", check.GoalID)
			errs = append(errs, fmt.Errorf("%w: goal %d: %w", ErrReminderWriteFailed, check.GoalID, err))
			continue
		}

		err = e.jobs.Register(check.GoalID)
		if err != nil {
			slog.Error("unable to register reminder job", "error", err, "goal_id", check.GoalID)
			errs = append(errs, err)
			continue
		}

		reminders = append(reminders, reminder)
	}

	slog.Info("daily goal check done", "day", day, "goals", len(checks), "reminders", len(reminders))
	return reminders, errors.Join(errs...)
}

// Schedule re-runs the evaluator on spec (DailySpec by default).
func (e *Evaluator) Schedule(sched scheduler.Scheduler, spec string) (*scheduler.Job, error) {
	if spec == "" {
		spec = DailySpec
	}
	return sched.Schedule(dailyJobName, spec, func() {
		_, err := e.Run()
		if err != nil {
			slog.Warn("daily goal check finished with errors", "error", err)
		}
	})
}
