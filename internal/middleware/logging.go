package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/millersjournal/journal/internal/ctxkeys"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// RequestLogging logs RPC calls with method, path, status, and duration.
// Entry syncs arrive every few hundred milliseconds while typing, so
// successful ones are logged at debug level.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		level := slog.LevelInfo
		switch {
		case rw.statusCode >= http.StatusInternalServerError:
			level = slog.LevelError
		case rw.statusCode >= http.StatusBadRequest:
			level = slog.LevelWarn
		case r.Method == http.MethodPost && r.URL.Path == "/api/entries":
			level = slog.LevelDebug
		}

		slog.Log(r.Context(), level, "rpc request",
			"request_id", ctxkeys.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
