package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/millersjournal/journal/internal/model"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

type EntryRepository interface {
	Upsert(entry *model.EntrySync) error
	ByDate(dateKey string) (*model.Entry, error)
	InMonth(month string) ([]*model.MonthEntry, error)
	Close() error
}

type entryRepository struct {
	upsert  *sqlx.NamedStmt
	byDate  *sqlx.Stmt
	inMonth *sqlx.Stmt
}

func NewEntryRepository(db *sqlx.DB) (EntryRepository, error) {
	var err error
	r := &entryRepository{}

	// goal_id belongs to the first insert, NULL included; later syncs only
	// replace content.
	r.upsert, err = db.PrepareNamed(`INSERT INTO entries (created_date, content_html, content_text, word_count, goal_id)
	          VALUES (:created_date, :content_html, :content_text, :word_count, :goal_id)
	          ON CONFLICT (created_date) DO UPDATE
	          SET content_html = excluded.content_html,
	              content_text = excluded.content_text,
	              word_count = excluded.word_count`)
	if err != nil {
		return nil, prepareError("upsert entry", err)
	}

	r.byDate, err = db.Preparex(`SELECT entries.created_date AS created_date,
	                 entries.content_html AS content_html,
	                 entries.content_text AS content_text,
	                 entries.word_count AS word_count,
	                 goals.id AS goal_id,
	                 goals.name AS goal_name,
	                 goals.count_target AS count_target
	          FROM entries
	          LEFT JOIN goals ON entries.goal_id = goals.id
	          WHERE entries.created_date = ?`)
	if err != nil {
		closeAll(r.upsert)
		return nil, prepareError("entry by date", err)
	}

	r.inMonth, err = db.Preparex(`SELECT created_date FROM entries
	          WHERE strftime('%Y-%m', created_date) = ?
	          ORDER BY created_date ASC`)
	if err != nil {
		closeAll(r.upsert, r.byDate)
		return nil, prepareError("entries in month", err)
	}

	return r, nil
}

func (r *entryRepository) Upsert(entry *model.EntrySync) error {
	_, err := r.upsert.Exec(entry)
	return err
}

func (r *entryRepository) ByDate(dateKey string) (*model.Entry, error) {
	entry := &model.Entry{}
	err := r.byDate.Get(entry, dateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *entryRepository) InMonth(month string) ([]*model.MonthEntry, error) {
	entries := []*model.MonthEntry{}
	err := r.inMonth.Select(&entries, month)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) Close() error {
	return closeAll(r.upsert, r.byDate, r.inMonth)
}
