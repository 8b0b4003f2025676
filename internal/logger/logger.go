package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

type Options struct {
	IsDev     bool
	SentryDSN string
	Release   string
	// Output defaults to stderr so command output on stdout stays clean.
	Output io.Writer
}

// Init initializes the global logger.
// Development: Text format with Debug level
// Production: JSON format with Info level
// Error records also go to Sentry when a DSN is configured. The returned
// function flushes pending Sentry events and must run before exit.
func Init(opts Options) func() {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var handlers []slog.Handler
	if opts.IsDev {
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	flush := func() {}
	if opts.SentryDSN != "" {
		environment := "production"
		if opts.IsDev {
			environment = "development"
		}
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Release:     opts.Release,
			Environment: environment,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
			flush = func() { sentry.Flush(2 * time.Second) }
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
	return flush
}
