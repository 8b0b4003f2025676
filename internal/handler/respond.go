package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/service"
)

// maxBodyBytes bounds request bodies; entries carry both HTML and plain text.
const maxBodyBytes = 8 << 20

func writeJSON(w http.ResponseWriter, status int, resp model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

// writeError renders a tagged service failure as {error}.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, model.Failure(err.Error()))
}
