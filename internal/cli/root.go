// Package cli is the journal command line: the long-running process that
// owns reminders and the RPC surface, plus one-shot commands over the same
// store.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/app"
	"github.com/millersjournal/journal/internal/config"
	"github.com/millersjournal/journal/internal/logger"
	"github.com/millersjournal/journal/internal/reminder"
)

type env struct {
	cfg   *config.Config
	flush func()
	opts  app.Options
}

// New builds the root command. opts is passed to every app the commands
// open; the zero value uses the real scheduler, notifier and browser.
func New(opts app.Options) *cobra.Command {
	e := &env{opts: opts, flush: func() {}}

	cmd := &cobra.Command{
		Use:           "journal",
		Short:         "A writing journal with daily word-count goals.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			e.cfg = config.Load()
			e.flush = logger.Init(logger.Options{
				IsDev:     e.cfg.IsDevelopment(),
				SentryDSN: e.cfg.SentryDSN,
				Release:   e.cfg.Version,
				Output:    cmd.ErrOrStderr(),
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			e.flush()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addServe(cmd, e)
	addCheck(cmd, e)
	addGoal(cmd, e)
	addEntry(cmd, e)
	addWrite(cmd, e)
	addOpen(cmd, e)
	addVersion(cmd)
	return cmd
}

// open builds the process context without starting any timers.
func (e *env) open() (*app.App, error) {
	return app.New(e.cfg, e.opts)
}

// today is the current date key in the configured time zone.
func (e *env) today() string {
	return reminder.Today(e.cfg.Location, e.opts.Now)()
}
