package model

type Goal struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	CountTarget int    `db:"count_target" json:"count_target"`
	StartDate   string `db:"start_date" json:"start_date"`
	EndDate     string `db:"end_date" json:"end_date"`
	Created     string `db:"created" json:"created"`
	Updated     string `db:"updated" json:"updated"`
}

// NewGoal is the payload of the new-goal form.
type NewGoal struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
	Start string `db:"start" json:"start"`
	End   string `db:"end" json:"end"`
}

// GoalRef is the minimal projection returned by the today's-goal lookup.
type GoalRef struct {
	ID int64 `db:"id" json:"id"`
}

// Contains reports whether day falls inside the goal's inclusive range.
func (g *Goal) Contains(day string) bool {
	return g.StartDate <= day && day <= g.EndDate
}
