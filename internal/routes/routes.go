package routes

import (
	"net/http"

	"github.com/millersjournal/journal/internal/app"
	"github.com/millersjournal/journal/internal/handler"
	"github.com/millersjournal/journal/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	goal := handler.NewGoalHandler(app.GoalService)
	entry := handler.NewEntryHandler(app.EntryService)
	window := handler.NewWindowHandler(app.Windows)

	mux := http.NewServeMux()

	// Goals
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("GET /api/goals/today", goal.Today)

	// Entries
	mux.HandleFunc("POST /api/entries", entry.Sync)
	mux.HandleFunc("GET /api/entries/{date}", entry.Load)
	mux.HandleFunc("GET /api/months/{month}/entries", entry.Month)

	// Windows
	mux.HandleFunc("POST /api/windows/{kind}", window.Open)
	mux.HandleFunc("DELETE /api/windows/{kind}", window.Closed)

	return middleware.Chain(mux,
		middleware.WithRequestID,
		middleware.RequestLogging,
	)
}
