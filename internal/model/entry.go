package model

// Entry is one day's journal content, joined with its goal when set.
type Entry struct {
	CreatedDate string  `db:"created_date" json:"created_date"`
	ContentHTML string  `db:"content_html" json:"content_html"`
	ContentText string  `db:"content_text" json:"content_text"`
	WordCount   int     `db:"word_count" json:"word_count"`
	GoalID      *int64  `db:"goal_id" json:"goal_id"`
	GoalName    *string `db:"goal_name" json:"goal_name"`
	CountTarget *int    `db:"count_target" json:"count_target"`
}

// EntrySync is what the editor pushes on every autosave.
type EntrySync struct {
	CreatedDate string `db:"created_date" json:"created_date"`
	ContentHTML string `db:"content_html" json:"content_html"`
	ContentText string `db:"content_text" json:"content_text"`
	WordCount   int    `db:"word_count" json:"word_count"`
	GoalID      *int64 `db:"goal_id" json:"goal_id"`
}

type MonthEntry struct {
	CreatedDate string `db:"created_date" json:"created_date"`
}
