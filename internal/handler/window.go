package handler

import (
	"log/slog"
	"net/http"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/shell"
)

type WindowHandler struct {
	windows *shell.Registry
}

func NewWindowHandler(windows *shell.Registry) *WindowHandler {
	return &WindowHandler{
		windows: windows,
	}
}

// Open handles POST /api/windows/{kind}: focus the window if it is open,
// otherwise create it.
func (h *WindowHandler) Open(w http.ResponseWriter, r *http.Request) {
	kind, ok := windowKind(w, r)
	if !ok {
		return
	}

	_, err := h.windows.Open(kind)
	if err != nil {
		slog.Error("failed to open window", "error", err, "kind", kind)
		writeJSON(w, http.StatusInternalServerError, model.Failure("failed to open "+kind))
		return
	}

	writeJSON(w, http.StatusOK, model.Result(true))
}

// Closed handles DELETE /api/windows/{kind}, sent by the UI when the user
// closes a window. The result reports whether it was registered.
func (h *WindowHandler) Closed(w http.ResponseWriter, r *http.Request) {
	kind, ok := windowKind(w, r)
	if !ok {
		return
	}

	removed := h.windows.Unregister(kind)
	slog.Debug("window closed", "kind", kind, "registered", removed)
	writeJSON(w, http.StatusOK, model.Result(removed))
}

func windowKind(w http.ResponseWriter, r *http.Request) (string, bool) {
	kind := r.PathValue("kind")
	if kind != shell.Calendar && kind != shell.Editor {
		writeJSON(w, http.StatusNotFound, model.Failure("unknown window "+kind))
		return "", false
	}
	return kind, true
}
