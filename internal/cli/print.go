package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/millersjournal/journal/internal/model"
)

var (
	bold  = color.New(color.Bold)
	title = color.New(color.Bold, color.Underline)
	faint = color.New(color.Faint, color.Italic)
	good  = color.New(color.FgGreen)
	warn  = color.New(color.FgYellow)
)

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	return tbl
}

func printNone(w io.Writer) {
	_, _ = faint.Fprintln(w, " none")
}

func printGoal(w io.Writer, goal *model.Goal) {
	tbl := newTable()
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Words/day"), bold.Sprint("From"), bold.Sprint("To"))
	tbl.AddRow(goal.ID, goal.Name, goal.CountTarget, goal.StartDate, goal.EndDate)
	_, _ = fmt.Fprintln(w, tbl)
}

func printEntry(w io.Writer, entry *model.Entry) {
	heading := entry.CreatedDate
	if entry.GoalName != nil {
		heading += " - " + *entry.GoalName
	}
	_, _ = title.Fprintln(w, heading)

	count := fmt.Sprintf("%d words", entry.WordCount)
	if entry.CountTarget != nil {
		count += " of " + strconv.Itoa(*entry.CountTarget)
	}
	_, _ = faint.Fprintln(w, count)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, entry.ContentText)
}

func printMonth(w io.Writer, month string, entries []*model.MonthEntry) {
	_, _ = bold.Fprintf(w, "%s", month)
	_, _ = faint.Fprintf(w, " - %d\n", len(entries))
	if len(entries) == 0 {
		printNone(w)
		return
	}
	for _, e := range entries {
		_, _ = fmt.Fprintln(w, "  "+e.CreatedDate)
	}
}

func printReminders(w io.Writer, reminders []*model.Reminder) {
	if len(reminders) == 0 {
		_, _ = good.Fprintln(w, "All of today's goals are met.")
		return
	}
	tbl := newTable()
	tbl.AddRow(bold.Sprint("Goal"), bold.Sprint("Due"), bold.Sprint("Progress"))
	for _, r := range reminders {
		tbl.AddRow(r.GoalID, r.DueDate, warn.Sprintf("%d%%", r.GoalPercentage))
	}
	_, _ = fmt.Fprintln(w, tbl)
}
