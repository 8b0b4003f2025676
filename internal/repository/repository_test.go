package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/millersjournal/journal/internal/db"
	"github.com/millersjournal/journal/internal/model"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Init(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB))
	t.Cleanup(func() { database.Close() })
	return database
}

type testRepos struct {
	db        *sqlx.DB
	goals     GoalRepository
	entries   EntryRepository
	reminders ReminderRepository
}

func openTestRepos(t *testing.T) *testRepos {
	t.Helper()
	database := openTestDB(t)

	goals, err := NewGoalRepository(database)
	require.NoError(t, err)
	entries, err := NewEntryRepository(database)
	require.NoError(t, err)
	reminders, err := NewReminderRepository(database)
	require.NoError(t, err)

	t.Cleanup(func() {
		goals.Close()
		entries.Close()
		reminders.Close()
	})
	return &testRepos{db: database, goals: goals, entries: entries, reminders: reminders}
}

func createGoal(t *testing.T, repo GoalRepository, name string, count int, start, end string) *model.Goal {
	t.Helper()
	goal, err := repo.Create(&model.NewGoal{Name: name, Count: count, Start: start, End: end})
	require.NoError(t, err)
	return goal
}

func syncEntry(t *testing.T, repo EntryRepository, day string, words int, goalID *int64) {
	t.Helper()
	err := repo.Upsert(&model.EntrySync{
		CreatedDate: day,
		ContentHTML: "<p>words</p>",
		ContentText: "words",
		WordCount:   words,
		GoalID:      goalID,
	})
	require.NoError(t, err)
}
