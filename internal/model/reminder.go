package model

// Reminder tracks a goal's completion percentage for one due date.
type Reminder struct {
	DueDate        string `db:"due_date" json:"due_date"`
	GoalID         int64  `db:"goal_id" json:"goal_id"`
	GoalPercentage int    `db:"goal_percentage" json:"goal_percentage"`
	Active         bool   `db:"active" json:"active"`
}

type NewReminder struct {
	DueDate        string `db:"due_date"`
	GoalID         int64  `db:"goal_id"`
	GoalPercentage int    `db:"goal_percentage"`
}

// DailyCheck is a goal active on a given day joined against that day's entry.
type DailyCheck struct {
	GoalID      int64   `db:"goal_id"`
	GoalName    string  `db:"goal_name"`
	CountTarget int     `db:"count_target"`
	TodaysEntry *string `db:"todays_entry"`
	EntryCount  *int    `db:"entry_count"`
}

// Percentage is floor(100 * words / target), 0 when nothing was written.
func (c *DailyCheck) Percentage() int {
	if c.EntryCount == nil || c.CountTarget <= 0 {
		return 0
	}
	return 100 * *c.EntryCount / c.CountTarget
}

// Complete reports whether the day's target has been reached.
func (c *DailyCheck) Complete() bool {
	return c.Percentage() >= 100
}
