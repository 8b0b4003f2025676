package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/routes"
)

const shutdownTimeout = 5 * time.Second

func addServe(topLevel *cobra.Command, e *env) {
	openCalendar := false

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the journal: reminders plus the RPC surface for the UI.",
		Example: `
journal serve
journal serve --open
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, e, openCalendar)
		},
	}

	cmd.Flags().BoolVar(&openCalendar, "open", false, "Open the calendar once the process is up.")
	topLevel.AddCommand(cmd)
}

func serve(ctx context.Context, e *env, openCalendar bool) error {
	app, err := e.open()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return err
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	ln, err := net.Listen("tcp", e.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", e.cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	err = app.Start()
	if err != nil {
		ln.Close()
		return err
	}
	if openCalendar {
		app.OpenCalendar()
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", ln.Addr().String(), "env", e.cfg.AppEnv, "version", e.cfg.Version)
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("server shutdown failed", "error", err)
		return err
	}
	return nil
}
