// Package reminder evaluates writing goals each day and keeps one hourly
// notification job alive per goal that is still short of its target.
package reminder

import (
	"errors"
	"time"

	"github.com/millersjournal/journal/internal/model"
)

const (
	// DailySpec is when the evaluator re-runs: 09:00 local time.
	DailySpec = "0 9 * * *"
	// HourlySpec is when notification jobs fire: the top of every hour.
	HourlySpec = "0 * * * *"

	dailyJobName = "daily-goal-check"
)

var ErrReminderWriteFailed = errors.New("reminder write failed")

// Store is the reminder side of the persistence layer.
type Store interface {
	GoalsNeedingReminder(day string) ([]*model.DailyCheck, error)
	Progress(goalID int64, day string) (*model.DailyCheck, error)
	Upsert(reminder *model.NewReminder) (*model.Reminder, error)
	Deactivate(day string, goalID int64) error
}

// Today returns a function yielding the current date key in loc.
func Today(loc *time.Location, now func() time.Time) func() string {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return func() string {
		return model.DateKey(now().In(loc))
	}
}
