package handler

import (
	"log/slog"
	"net/http"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Create handles POST /api/goals with {name, count, start, end}.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var goal model.NewGoal
	err := decodeJSON(w, r, &goal)
	if err != nil {
		slog.Warn("invalid goal payload", "error", err)
		writeJSON(w, http.StatusBadRequest, model.Failure("invalid goal payload"))
		return
	}

	created, err := h.goalService.Create(&goal)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Result(created))
}

// Today handles GET /api/goals/today?today=YYYY-MM-DD. An empty body means
// no goal covers that date.
func (h *GoalHandler) Today(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("today")

	ref, err := h.goalService.TodayGoal(today)
	if err != nil {
		writeError(w, err)
		return
	}
	if ref == nil {
		writeJSON(w, http.StatusOK, model.Response{})
		return
	}

	writeJSON(w, http.StatusOK, model.Result(ref))
}
