package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCloser struct {
	err    error
	closed bool
}

func (s *stubCloser) Close() error {
	s.closed = true
	return s.err
}

func TestCloseAllClosesEveryStatement(t *testing.T) {
	errA := errors.New("a")
	errC := errors.New("c")
	a, b, c := &stubCloser{err: errA}, &stubCloser{}, &stubCloser{err: errC}

	err := closeAll(a, b, c)

	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.True(t, c.closed)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.NoError(t, closeAll())
}

func TestRepositoriesCloseCleanly(t *testing.T) {
	database := openTestDB(t)

	goals, err := NewGoalRepository(database)
	require.NoError(t, err)
	entries, err := NewEntryRepository(database)
	require.NoError(t, err)
	reminders, err := NewReminderRepository(database)
	require.NoError(t, err)

	assert.NoError(t, goals.Close())
	assert.NoError(t, entries.Close())
	assert.NoError(t, reminders.Close())
}
