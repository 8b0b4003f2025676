package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/millersjournal/journal/internal/config"
	"github.com/millersjournal/journal/internal/db"
	"github.com/millersjournal/journal/internal/notify"
	"github.com/millersjournal/journal/internal/reminder"
	"github.com/millersjournal/journal/internal/repository"
	"github.com/millersjournal/journal/internal/scheduler"
	"github.com/millersjournal/journal/internal/service"
	"github.com/millersjournal/journal/internal/shell"
)

// ErrSetup marks failures of first-run setup; the store cannot be trusted
// and the process must stop.
var ErrSetup = errors.New("setup failed")

// Options swaps out the process's side effects, mainly for tests.
type Options struct {
	// Scheduler defaults to a cron engine in cfg.Location.
	Scheduler scheduler.Scheduler
	// Notifier defaults to notify.New(cfg.NotifierMode).
	Notifier notify.Notifier
	// WindowFactory defaults to shell.BrowserFactory(cfg.UIURL).
	WindowFactory shell.Factory
	Now           func() time.Time
}

// App is the process context: it owns the store, the registries of windows
// and reminder jobs, and the daily evaluation timer.
type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	Marker       *db.Marker
	GoalService  *service.GoalService
	EntryService *service.EntryService
	Reminders    repository.ReminderRepository
	Jobs         *reminder.Jobs
	Evaluator    *reminder.Evaluator
	Windows      *shell.Registry
	Scheduler    scheduler.Scheduler

	now       func() time.Time
	cron      *scheduler.Cron
	daily     *scheduler.Job
	closers   []func() error
	closeOnce sync.Once
	closeErr  error
}

func New(cfg *config.Config, opts Options) (*App, error) {
	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize database: %w", ErrSetup, err)
	}

	a := &App{Cfg: cfg, DB: database, now: opts.Now}
	if a.now == nil {
		a.now = time.Now
	}
	a.closers = append(a.closers, database.Close)

	a.Marker, err = db.Setup(database, cfg.MarkerPath, cfg.Version)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	// Repositories
	goalRepository, err := repository.NewGoalRepository(database)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, goalRepository.Close)

	entryRepository, err := repository.NewEntryRepository(database)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, entryRepository.Close)

	reminderRepository, err := repository.NewReminderRepository(database)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, reminderRepository.Close)

	// Services
	a.GoalService = service.NewGoalService(goalRepository)
	a.EntryService = service.NewEntryService(entryRepository)
	a.Reminders = reminderRepository

	// Windows
	factory := opts.WindowFactory
	if factory == nil {
		factory = shell.BrowserFactory(cfg.UIURL)
	}
	a.Windows = shell.NewRegistry(factory)

	// Reminders
	a.Scheduler = opts.Scheduler
	if a.Scheduler == nil {
		a.cron = scheduler.NewCron(cfg.Location, slog.Default().With("component", "cron"))
		a.Scheduler = a.cron
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.New(cfg.NotifierMode)
	}
	today := reminder.Today(cfg.Location, opts.Now)
	a.Jobs = reminder.NewJobs(a.Scheduler, reminderRepository, notifier, reminder.JobsConfig{
		Spec:     cfg.ReminderSpec,
		Language: cfg.Language,
		OnClick:  a.OpenCalendar,
		Today:    today,
	})
	a.Evaluator = reminder.NewEvaluator(reminderRepository, a.Jobs, today)

	return a, nil
}

// Start arms the daily evaluation and, unless disabled, runs it once now.
func (a *App) Start() error {
	daily, err := a.Evaluator.Schedule(a.Scheduler, a.Cfg.DailyCheckSpec)
	if err != nil {
		return err
	}
	a.daily = daily

	if a.cron != nil {
		a.cron.Start()
	}

	if a.Cfg.CheckOnStart {
		_, err := a.Evaluator.Run()
		if err != nil {
			slog.Warn("start-up goal check finished with errors", "error", err)
		}
	}

	next, err := a.NextCheck()
	if err != nil {
		return err
	}
	slog.Info("reminders started", "daily", a.Cfg.DailyCheckSpec, "hourly", a.Cfg.ReminderSpec,
		"timezone", a.Cfg.Location.String(), "next_check", next)
	return nil
}

// NextCheck is when the daily evaluation runs next.
func (a *App) NextCheck() (time.Time, error) {
	loc := a.Cfg.Location
	if loc == nil {
		loc = time.Local
	}
	spec := a.Cfg.DailyCheckSpec
	if spec == "" {
		spec = reminder.DailySpec
	}
	return scheduler.Next(spec, a.now().In(loc))
}

// OpenCalendar focuses the calendar window, opening it if needed.
func (a *App) OpenCalendar() {
	_, err := a.Windows.Open(shell.Calendar)
	if err != nil {
		slog.Error("unable to open calendar", "error", err)
	}
}

// Close cancels every timer before the store goes away, so nothing fires
// against a closed database. Safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		if a.daily != nil {
			a.daily.Cancel()
		}
		if a.Jobs != nil {
			a.Jobs.StopAll()
		}
		if a.cron != nil {
			<-a.cron.Stop().Done()
		}

		var errs []error
		if a.Windows != nil {
			errs = append(errs, a.Windows.CloseAll())
		}
		for i := len(a.closers) - 1; i >= 0; i-- {
			errs = append(errs, a.closers[i]())
		}
		a.closeErr = errors.Join(errs...)
	})
	return a.closeErr
}
