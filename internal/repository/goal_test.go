package repository

import (
	"testing"

	"github.com/millersjournal/journal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCreate(t *testing.T) {
	repos := openTestRepos(t)

	goal := createGoal(t, repos.goals, "NaNoWriMo", 1667, "2026-11-01", "2026-11-30")
	assert.NotZero(t, goal.ID)
	assert.Equal(t, "NaNoWriMo", goal.Name)
	assert.Equal(t, 1667, goal.CountTarget)
	assert.Equal(t, "2026-11-01", goal.StartDate)
	assert.Equal(t, "2026-11-30", goal.EndDate)
	assert.NotEmpty(t, goal.Created)

	got, err := repos.goals.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal, got)
}

func TestGoalCreateRejectsInvalidRows(t *testing.T) {
	repos := openTestRepos(t)

	_, err := repos.goals.Create(&model.NewGoal{Name: "backwards", Count: 100, Start: "2026-11-30", End: "2026-11-01"})
	assert.Error(t, err)

	_, err = repos.goals.Create(&model.NewGoal{Name: "zero", Count: 0, Start: "2026-11-01", End: "2026-11-30"})
	assert.Error(t, err)
}

func TestGoalByIDNotFound(t *testing.T) {
	repos := openTestRepos(t)

	_, err := repos.goals.ByID(42)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalActiveOn(t *testing.T) {
	repos := openTestRepos(t)

	october := createGoal(t, repos.goals, "october", 500, "2026-10-01", "2026-10-31")

	ref, err := repos.goals.ActiveOn("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, october.ID, ref.ID)

	ref, err = repos.goals.ActiveOn("2026-10-31")
	require.NoError(t, err)
	assert.Equal(t, october.ID, ref.ID)

	_, err = repos.goals.ActiveOn("2026-11-01")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalActiveOnPrefersLatestStart(t *testing.T) {
	repos := openTestRepos(t)

	createGoal(t, repos.goals, "month", 500, "2026-10-01", "2026-10-31")
	sprint := createGoal(t, repos.goals, "sprint", 1000, "2026-10-15", "2026-10-21")

	ref, err := repos.goals.ActiveOn("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, sprint.ID, ref.ID)
}
