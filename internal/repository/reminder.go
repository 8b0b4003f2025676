package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/millersjournal/journal/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrGoalNotActive    = errors.New("goal not active on date")
)

type ReminderRepository interface {
	// GoalsNeedingReminder lists goals active on day whose entry for that
	// day is missing or short of the target.
	GoalsNeedingReminder(day string) ([]*model.DailyCheck, error)
	// Progress reports one goal against day's entry, complete or not.
	Progress(goalID int64, day string) (*model.DailyCheck, error)
	Upsert(reminder *model.NewReminder) (*model.Reminder, error)
	Deactivate(day string, goalID int64) error
	ByKey(day string, goalID int64) (*model.Reminder, error)
	Close() error
}

type reminderRepository struct {
	needing    *sqlx.NamedStmt
	progress   *sqlx.NamedStmt
	upsert     *sqlx.NamedStmt
	deactivate *sqlx.NamedStmt
	byKey      *sqlx.NamedStmt
}

const dailyCheckColumns = `goals.id AS goal_id,
	                 goals.name AS goal_name,
	                 goals.count_target AS count_target,
	                 entries.created_date AS todays_entry,
	                 entries.word_count AS entry_count
	          FROM goals
	          LEFT JOIN entries ON entries.created_date = :today
	          WHERE date(goals.start_date) <= date(:today) AND date(goals.end_date) >= date(:today)`

type dayArgs struct {
	Today  string `db:"today"`
	GoalID int64  `db:"goal_id"`
}

type reminderKey struct {
	DueDate string `db:"due_date"`
	GoalID  int64  `db:"goal_id"`
}

func NewReminderRepository(db *sqlx.DB) (ReminderRepository, error) {
	var err error
	r := &reminderRepository{}

	r.needing, err = db.PrepareNamed(`SELECT ` + dailyCheckColumns + `
	            AND (entries.word_count IS NULL OR entries.word_count < goals.count_target)
	          ORDER BY goals.id ASC`)
	if err != nil {
		return nil, prepareError("goals needing reminder", err)
	}

	r.progress, err = db.PrepareNamed(`SELECT ` + dailyCheckColumns + `
	            AND goals.id = :goal_id`)
	if err != nil {
		closeAll(r.needing)
		return nil, prepareError("goal progress", err)
	}

	r.upsert, err = db.PrepareNamed(`INSERT INTO reminders (due_date, goal_id, goal_percentage, active)
	          VALUES (:due_date, :goal_id, :goal_percentage, 1)
	          ON CONFLICT (due_date, goal_id) DO UPDATE
	          SET goal_percentage = excluded.goal_percentage, active = 1
	          RETURNING due_date, goal_id, goal_percentage, active`)
	if err != nil {
		closeAll(r.needing, r.progress)
		return nil, prepareError("upsert reminder", err)
	}

	r.deactivate, err = db.PrepareNamed(`UPDATE reminders SET active = 0
	          WHERE due_date = :due_date AND goal_id = :goal_id`)
	if err != nil {
		closeAll(r.needing, r.progress, r.upsert)
		return nil, prepareError("deactivate reminder", err)
	}

	r.byKey, err = db.PrepareNamed(`SELECT due_date, goal_id, goal_percentage, active FROM reminders
	          WHERE due_date = :due_date AND goal_id = :goal_id`)
	if err != nil {
		closeAll(r.needing, r.progress, r.upsert, r.deactivate)
		return nil, prepareError("reminder by key", err)
	}

	return r, nil
}

func (r *reminderRepository) GoalsNeedingReminder(day string) ([]*model.DailyCheck, error) {
	checks := []*model.DailyCheck{}
	err := r.needing.Select(&checks, dayArgs{Today: day})
	if err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *reminderRepository) Progress(goalID int64, day string) (*model.DailyCheck, error) {
	check := &model.DailyCheck{}
	err := r.progress.Get(check, dayArgs{Today: day, GoalID: goalID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotActive
	}
	if err != nil {
		return nil, err
	}
	return check, nil
}

func (r *reminderRepository) Upsert(reminder *model.NewReminder) (*model.Reminder, error) {
	saved := &model.Reminder{}
	err := r.upsert.Get(saved, reminder)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *reminderRepository) Deactivate(day string, goalID int64) error {
	result, err := r.deactivate.Exec(reminderKey{DueDate: day, GoalID: goalID})
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) ByKey(day string, goalID int64) (*model.Reminder, error) {
	reminder := &model.Reminder{}
	err := r.byKey.Get(reminder, reminderKey{DueDate: day, GoalID: goalID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Close() error {
	return closeAll(r.needing, r.progress, r.upsert, r.deactivate, r.byKey)
}
