package handler

import (
	"log/slog"
	"net/http"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/service"
)

type EntryHandler struct {
	entryService *service.EntryService
}

func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// Sync handles POST /api/entries. The answer is always {syncSuccess}.
func (h *EntryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var entry model.EntrySync
	err := decodeJSON(w, r, &entry)
	if err != nil {
		slog.Warn("invalid entry payload", "error", err)
		writeJSON(w, http.StatusBadRequest, model.Synced(false))
		return
	}

	err = h.entryService.Sync(&entry)
	if err != nil {
		writeJSON(w, http.StatusOK, model.Synced(false))
		return
	}

	writeJSON(w, http.StatusOK, model.Synced(true))
}

// Load handles GET /api/entries/{date}.
func (h *EntryHandler) Load(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	_, err := model.ParseDateKey(date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.Failure(err.Error()))
		return
	}

	entry, err := h.entryService.Load(date)
	if err != nil {
		writeError(w, err)
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusOK, model.Response{})
		return
	}

	writeJSON(w, http.StatusOK, model.Result(entry))
}

// Month handles GET /api/months/{month}/entries.
func (h *EntryHandler) Month(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryService.Month(r.PathValue("month"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Result(entries))
}
