package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/millersjournal/journal/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.NewGoal) (*model.Goal, error)
	ByID(goalID int64) (*model.Goal, error)
	ActiveOn(day string) (*model.GoalRef, error)
	Close() error
}

type goalRepository struct {
	insert   *sqlx.NamedStmt
	byID     *sqlx.Stmt
	activeOn *sqlx.Stmt
}

func NewGoalRepository(db *sqlx.DB) (GoalRepository, error) {
	var err error
	r := &goalRepository{}

	r.insert, err = db.PrepareNamed(`INSERT INTO goals (name, count_target, start_date, end_date)
	          VALUES (:name, :count, :start, :end)
	          RETURNING id, name, count_target, start_date, end_date, created, updated`)
	if err != nil {
		return nil, prepareError("insert goal", err)
	}

	r.byID, err = db.Preparex(`SELECT id, name, count_target, start_date, end_date, created, updated
	          FROM goals WHERE id = ?`)
	if err != nil {
		closeAll(r.insert)
		return nil, prepareError("goal by id", err)
	}

	// Ranges may overlap; the most recently started goal wins.
	r.activeOn, err = db.Preparex(`SELECT id FROM goals
	          WHERE date(start_date) <= date(?1) AND date(end_date) >= date(?1)
	          ORDER BY start_date DESC, id DESC
	          LIMIT 1`)
	if err != nil {
		closeAll(r.insert, r.byID)
		return nil, prepareError("active goal", err)
	}

	return r, nil
}

func (r *goalRepository) Create(goal *model.NewGoal) (*model.Goal, error) {
	created := &model.Goal{}
	err := r.insert.Get(created, goal)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *goalRepository) ByID(goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	err := r.byID.Get(goal, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepository) ActiveOn(day string) (*model.GoalRef, error) {
	ref := &model.GoalRef{}
	err := r.activeOn.Get(ref, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (r *goalRepository) Close() error {
	return closeAll(r.insert, r.byID, r.activeOn)
}
