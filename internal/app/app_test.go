package app

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/millersjournal/journal/internal/config"
	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/notify"
	"github.com/millersjournal/journal/internal/scheduler"
	"github.com/millersjournal/journal/internal/shell"
)

type recordingNotifier struct {
	mu    sync.Mutex
	shown []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
	return nil
}

type stubWindow struct{ focused, closed int }

func (s *stubWindow) Focus() error { s.focused++; return nil }
func (s *stubWindow) Close() error { s.closed++; return nil }

type harness struct {
	app      *App
	sched    *scheduler.Manual
	notifier *recordingNotifier
	windows  map[string]*stubWindow
}

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		AppName:        "Miller's Journal",
		AppEnv:         "development",
		Version:        "test",
		DataDir:        dir,
		DBPath:         filepath.Join(dir, "millers-journal.db"),
		MarkerPath:     filepath.Join(dir, "mj_config.json"),
		CheckOnStart:   true,
		Location:       time.UTC,
		DailyCheckSpec: "0 9 * * *",
		ReminderSpec:   "0 * * * *",
		NotifierMode:   notify.ModeLog,
		Language:       language.English,
	}
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	h := &harness{
		sched:    scheduler.NewManual(),
		notifier: &recordingNotifier{},
		windows:  map[string]*stubWindow{},
	}
	now := time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)

	a, err := New(cfg, Options{
		Scheduler: h.sched,
		Notifier:  h.notifier,
		WindowFactory: func(kind string) (shell.Window, error) {
			w := &stubWindow{}
			h.windows[kind] = w
			return w, nil
		},
		Now: func() time.Time { return now },
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	h.app = a
	return h
}

func TestNewWritesMarker(t *testing.T) {
	cfg := testConfig(t)
	h := newHarness(t, cfg)

	require.NotNil(t, h.app.Marker)
	assert.Equal(t, "test", h.app.Marker.Version)
	assert.FileExists(t, cfg.MarkerPath)
}

func TestStartSchedulesRemindersForUnmetGoals(t *testing.T) {
	cfg := testConfig(t)
	h := newHarness(t, cfg)

	goal, err := h.app.GoalService.Create(&model.NewGoal{Name: "NaNoWriMo", Count: 1000, Start: "2026-10-01", End: "2026-10-31"})
	require.NoError(t, err)
	require.NoError(t, h.app.EntryService.Sync(&model.EntrySync{
		CreatedDate: "2026-10-18", ContentText: "draft", WordCount: 250, GoalID: &goal.ID,
	}))

	require.NoError(t, h.app.Start())

	assert.Equal(t, []int64{goal.ID}, h.app.Jobs.Active())
	assert.Equal(t, 1, h.sched.Live("daily-goal-check"))

	next, err := h.app.NextCheck()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), next)

	reminder, err := h.app.Reminders.ByKey("2026-10-18", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, reminder.GoalPercentage)
	assert.True(t, reminder.Active)
}

func TestHourlyFiringNotifiesThenRetires(t *testing.T) {
	cfg := testConfig(t)
	h := newHarness(t, cfg)

	goal, err := h.app.GoalService.Create(&model.NewGoal{Name: "Daily pages", Count: 500, Start: "2026-10-18", End: "2026-10-18"})
	require.NoError(t, err)
	require.NoError(t, h.app.Start())

	name := "goal-reminder:1"
	assert.Equal(t, 1, h.sched.Fire(name))
	require.Len(t, h.notifier.shown, 1)
	assert.Equal(t, "Complete Today's Writing Goal", h.notifier.shown[0].Title)

	// Activating the notification opens the calendar.
	h.notifier.shown[0].OnClick()
	require.Contains(t, h.windows, shell.Calendar)
	assert.Equal(t, 1, h.windows[shell.Calendar].focused)

	require.NoError(t, h.app.EntryService.Sync(&model.EntrySync{
		CreatedDate: "2026-10-18", ContentText: "done", WordCount: 600, GoalID: &goal.ID,
	}))
	h.sched.Fire(name)

	assert.Len(t, h.notifier.shown, 1)
	assert.Empty(t, h.app.Jobs.Active())
	assert.Equal(t, 0, h.sched.Live(name))

	reminder, err := h.app.Reminders.ByKey("2026-10-18", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, reminder.GoalPercentage)
	assert.False(t, reminder.Active)
}

func TestStartWithoutCheck(t *testing.T) {
	cfg := testConfig(t)
	cfg.CheckOnStart = false
	h := newHarness(t, cfg)

	_, err := h.app.GoalService.Create(&model.NewGoal{Name: "Quiet", Count: 100, Start: "2026-10-01", End: "2026-10-31"})
	require.NoError(t, err)
	require.NoError(t, h.app.Start())
	assert.Empty(t, h.app.Jobs.Active())

	h.sched.Fire("daily-goal-check")
	assert.Equal(t, []int64{1}, h.app.Jobs.Active())
}

func TestCloseStopsEverything(t *testing.T) {
	cfg := testConfig(t)
	h := newHarness(t, cfg)

	_, err := h.app.GoalService.Create(&model.NewGoal{Name: "Close", Count: 100, Start: "2026-10-01", End: "2026-10-31"})
	require.NoError(t, err)
	require.NoError(t, h.app.Start())
	h.app.OpenCalendar()

	require.NoError(t, h.app.Close())
	require.NoError(t, h.app.Close())

	assert.Equal(t, 0, h.sched.Len())
	assert.Empty(t, h.app.Jobs.Active())
	assert.Equal(t, 1, h.windows[shell.Calendar].closed)
	assert.Error(t, h.app.DB.Ping())
}

func TestNewFailsOnUnwritableMarker(t *testing.T) {
	cfg := testConfig(t)
	cfg.MarkerPath = filepath.Join(cfg.DataDir, "missing", "dir", "mj_config.json")

	_, err := New(cfg, Options{Scheduler: scheduler.NewManual(), Notifier: &recordingNotifier{}})
	require.ErrorIs(t, err, ErrSetup)
}

func TestNewRebuildsDeletedStore(t *testing.T) {
	cfg := testConfig(t)
	first := newHarness(t, cfg)
	require.NoError(t, first.app.Close())

	for _, suffix := range []string{"", "-wal", "-shm"} {
		err := os.Remove(cfg.DBPath + suffix)
		if err != nil {
			require.ErrorIs(t, err, os.ErrNotExist)
		}
	}
	require.FileExists(t, cfg.MarkerPath)

	h := newHarness(t, cfg)

	goal, err := h.app.GoalService.Create(&model.NewGoal{Name: "Again", Count: 100, Start: "2026-10-01", End: "2026-10-31"})
	require.NoError(t, err)

	entry, err := h.app.EntryService.Load("2026-10-18")
	require.NoError(t, err)
	assert.Nil(t, entry)

	reminders, err := h.app.Evaluator.Run()
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, goal.ID, reminders[0].GoalID)
}
